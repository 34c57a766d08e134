package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Bipul-Dubey/house-price-predictor/shared/constants"
	"github.com/Bipul-Dubey/house-price-predictor/shared/models"
	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
	"github.com/Bipul-Dubey/house-price-predictor/shared/scoring"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks . PredictService,PredictionLogService

type PredictService interface {
	// PredictPrice returns *schema.ValidationError when the feature set does
	// not match the schema and *PredictionError when scoring fails.
	PredictPrice(ctx context.Context, features schema.FeatureRequest) (float64, error)
	Fields() []string
}

// PredictionError wraps any failure raised while scoring a row.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string { return e.Err.Error() }
func (e *PredictionError) Unwrap() error { return e.Err }

type predictService struct {
	registry     *schema.Registry
	predictor    scoring.Predictor
	modelVersion string
	variant      constants.VariantEnum
	logs         PredictionLogService
	log          *zap.Logger
}

type PredictServiceOptions struct {
	Registry     *schema.Registry
	Predictor    scoring.Predictor
	ModelVersion string
	Variant      constants.VariantEnum
	// Logs is optional; nil disables the audit trail.
	Logs   PredictionLogService
	Logger *zap.Logger
}

func NewPredictService(opts PredictServiceOptions) PredictService {
	if opts.Registry == nil {
		opts.Registry = schema.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &predictService{
		registry:     opts.Registry,
		predictor:    opts.Predictor,
		modelVersion: opts.ModelVersion,
		variant:      opts.Variant,
		logs:         opts.Logs,
		log:          opts.Logger,
	}
}

func (s *predictService) Fields() []string {
	return s.registry.Fields()
}

func (s *predictService) PredictPrice(ctx context.Context, features schema.FeatureRequest) (float64, error) {
	start := time.Now()

	row, err := s.registry.Canonicalize(features)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			s.log.Info("feature set rejected",
				zap.Strings("missing", verr.Missing),
				zap.Strings("unexpected", verr.Unexpected),
			)
			s.record(ctx, start, &models.PredictionLog{
				Outcome:       constants.OutcomeValidationError,
				MissingFields: strings.Join(verr.Missing, ","),
			})
		}
		return 0, err
	}

	price, err := s.invoke(ctx, row)
	if err != nil {
		s.log.Warn("prediction failed", zap.Error(err))
		s.record(ctx, start, &models.PredictionLog{
			Outcome:      constants.OutcomePredictionError,
			ErrorMessage: err.Error(),
		})
		return 0, err
	}

	s.record(ctx, start, &models.PredictionLog{
		Outcome:        constants.OutcomeSuccess,
		PredictedPrice: &price,
	})
	return price, nil
}

func (s *predictService) invoke(ctx context.Context, row schema.Row) (float64, error) {
	if s.predictor == nil {
		return 0, &PredictionError{Err: errors.New("model not loaded")}
	}

	preds, err := s.predictor.Predict(ctx, []schema.Row{row})
	if err != nil {
		return 0, &PredictionError{Err: err}
	}
	if len(preds) != 1 {
		return 0, &PredictionError{Err: fmt.Errorf("model returned %d predictions for 1 row", len(preds))}
	}
	return preds[0], nil
}

// record stores an audit entry. Failures are logged and never change the
// response.
func (s *predictService) record(ctx context.Context, start time.Time, entry *models.PredictionLog) {
	if s.logs == nil {
		return
	}

	entry.RequestID = RequestIDFromContext(ctx)
	entry.Variant = string(s.variant)
	entry.ModelVersion = s.modelVersion
	entry.LatencyMicros = time.Since(start).Microseconds()

	if err := s.logs.Record(ctx, entry); err != nil {
		s.log.Warn("failed to record prediction", zap.String("request_id", entry.RequestID), zap.Error(err))
	}
}

type requestIDKey struct{}

// WithRequestID attaches the request id used for audit entries.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
