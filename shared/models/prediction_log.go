package models

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// PredictionLog
// ===============================
// One row per /predict call that passed the auth gate. Feature values are
// not stored.
type PredictionLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID      string    `gorm:"type:varchar(128);index"`
	Variant        string    `gorm:"type:varchar(20);not null"`       // open / secure
	Outcome        string    `gorm:"type:varchar(32);not null;index"` // success / validation_error / prediction_error
	PredictedPrice *float64  `gorm:"type:double precision"`           // set on success only
	MissingFields  string    `gorm:"type:text"`                       // comma separated, validation errors only
	ErrorMessage   string    `gorm:"type:text"`                       // prediction errors only
	ModelVersion   string    `gorm:"type:varchar(64)"`
	LatencyMicros  int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"default:now()"`
}

func (PredictionLog) TableName() string {
	return "prediction_logs"
}
