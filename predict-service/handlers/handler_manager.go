package handlers

import (
	"github.com/Bipul-Dubey/house-price-predictor/predict-service/services"
)

type HandlerManager struct {
	PredictHandler *PredictHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		PredictHandler: NewPredictHandler(sm.PredictService),
	}
}
