package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bipul-Dubey/house-price-predictor/predict-service/handlers"
	"github.com/Bipul-Dubey/house-price-predictor/shared/constants"
	"github.com/Bipul-Dubey/house-price-predictor/shared/middleware"
)

type Options struct {
	Variant constants.VariantEnum
	// APIKey guards /predict and /features for VariantSecure.
	APIKey string
	Logger *zap.Logger
}

func SetupRoutes(hm *handlers.HandlerManager, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), middleware.Recovery(log))
	if opts.Variant == constants.VariantSecure {
		r.Use(middleware.CORS())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName(opts.Variant),
		})
	})

	api := r.Group("")
	if opts.Variant == constants.VariantSecure {
		api.Use(middleware.APIKeyAuth(opts.APIKey))
	}
	{
		api.POST("/predict", hm.PredictHandler.Predict)
		api.GET("/features", hm.PredictHandler.Features)
	}

	return r
}

func serviceName(variant constants.VariantEnum) string {
	if variant == constants.VariantSecure {
		return "secure-predict"
	}
	return "predict"
}
