package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bipul-Dubey/house-price-predictor/predict-service/config"
	"github.com/Bipul-Dubey/house-price-predictor/predict-service/handlers"
	"github.com/Bipul-Dubey/house-price-predictor/predict-service/routes"
	"github.com/Bipul-Dubey/house-price-predictor/predict-service/services"
	"github.com/Bipul-Dubey/house-price-predictor/shared/constants"
	"github.com/Bipul-Dubey/house-price-predictor/shared/db"
	"github.com/Bipul-Dubey/house-price-predictor/shared/logger"
	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
	"github.com/Bipul-Dubey/house-price-predictor/shared/scoring"
)

func main() {
	cfg, err := config.Load(constants.VariantOpen)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	zlog, err := logger.New(cfg.LogLevel, "predict-service")
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Load the model once; every request shares it read-only
	pipeline, err := scoring.LoadPipeline(cfg.ModelPath, schema.Default())
	if err != nil {
		zlog.Fatal("Failed to load model", zap.String("path", cfg.ModelPath), zap.Error(err))
	}
	zlog.Info("Model loaded", zap.String("name", pipeline.Name()), zap.String("version", pipeline.Version()))

	// Initialize prediction log database (optional)
	var database *gorm.DB
	if cfg.PredictionLogEnabled {
		database, err = db.NewDB(cfg.DB)
		if err != nil {
			zlog.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := services.MigratePredictionLogs(database); err != nil {
			zlog.Fatal("Failed to migrate prediction logs", zap.Error(err))
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}
	}

	serviceManager := services.NewServiceManager(pipeline, pipeline.Version(), cfg.Variant, database, zlog)
	handlerManager := handlers.NewHandlerManager(serviceManager)

	gin.SetMode(cfg.GinMode)
	r := routes.SetupRoutes(handlerManager, routes.Options{
		Variant: cfg.Variant,
		Logger:  zlog,
	})

	zlog.Info("Prediction Service starting", zap.String("port", cfg.Port))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}
