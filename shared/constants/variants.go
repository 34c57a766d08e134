package constants

type VariantEnum string

const (
	// VariantOpen serves /predict without authentication.
	VariantOpen VariantEnum = "open"
	// VariantSecure requires x-api-key and allows cross-origin callers.
	VariantSecure VariantEnum = "secure"
)

const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomePredictionError = "prediction_error"
)
