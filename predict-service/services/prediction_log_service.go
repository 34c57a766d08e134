package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Bipul-Dubey/house-price-predictor/shared/models"
)

type PredictionLogService interface {
	Record(ctx context.Context, entry *models.PredictionLog) error
}

type predictionLogService struct {
	db *gorm.DB
}

func NewPredictionLogService(db *gorm.DB) PredictionLogService {
	return &predictionLogService{db: db}
}

// MigratePredictionLogs creates or updates the prediction_logs table.
func MigratePredictionLogs(db *gorm.DB) error {
	return db.AutoMigrate(&models.PredictionLog{})
}

func (s *predictionLogService) Record(ctx context.Context, entry *models.PredictionLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(entry).Error
}
