package models

import "github.com/Bipul-Dubey/house-price-predictor/shared/schema"

type PredictRequest struct {
	Features schema.FeatureRequest `json:"features" binding:"required"`
}

type PredictResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
}

// ValidationErrorResponse is returned when the feature set does not match
// the schema.
type ValidationErrorResponse struct {
	Error string `json:"error"`
}

type ErrorDetailResponse struct {
	Detail string `json:"detail"`
}

type FeaturesResponse struct {
	Fields []string `json:"fields"`
	Count  int      `json:"count"`
}
