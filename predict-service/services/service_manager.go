package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bipul-Dubey/house-price-predictor/shared/constants"
	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
	"github.com/Bipul-Dubey/house-price-predictor/shared/scoring"
)

type ServiceManager struct {
	PredictService       PredictService
	PredictionLogService PredictionLogService
}

// NewServiceManager wires the services. db may be nil, in which case
// predictions are not audited.
func NewServiceManager(predictor scoring.Predictor, modelVersion string, variant constants.VariantEnum, db *gorm.DB, log *zap.Logger) *ServiceManager {
	var logs PredictionLogService
	if db != nil {
		logs = NewPredictionLogService(db)
	}

	return &ServiceManager{
		PredictService: NewPredictService(PredictServiceOptions{
			Registry:     schema.Default(),
			Predictor:    predictor,
			ModelVersion: modelVersion,
			Variant:      variant,
			Logs:         logs,
			Logger:       log,
		}),
		PredictionLogService: logs,
	}
}
