package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bipul-Dubey/house-price-predictor/predict-service/models"
	"github.com/Bipul-Dubey/house-price-predictor/predict-service/services"
	"github.com/Bipul-Dubey/house-price-predictor/shared/middleware"
	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
)

type PredictHandler struct {
	predictService services.PredictService
}

func NewPredictHandler(predictService services.PredictService) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
	}
}

// Predict scores one feature set. A feature set that does not match the
// schema is answered with 200 and an "error" body; scoring failures are 500.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorDetailResponse{Detail: err.Error()})
		return
	}

	ctx := services.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))
	price, err := h.predictService.PredictPrice(ctx, req.Features)
	if err != nil {
		_ = c.Error(err)

		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusOK, models.ValidationErrorResponse{Error: verr.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, models.ErrorDetailResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PredictResponse{PredictedPrice: price})
}

// Features lists the canonical field order.
func (h *PredictHandler) Features(c *gin.Context) {
	fields := h.predictService.Fields()
	c.JSON(http.StatusOK, models.FeaturesResponse{Fields: fields, Count: len(fields)})
}
