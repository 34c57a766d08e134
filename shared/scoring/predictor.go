// Package scoring loads the pre-trained price regression pipeline and
// evaluates it against canonical feature rows.
package scoring

import (
	"context"

	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
)

//go:generate mockgen -destination=mocks/mock_predictor.go -package=mocks . Predictor

// Predictor scores canonical rows. Implementations are shared across
// requests and must be safe for concurrent use.
type Predictor interface {
	Predict(ctx context.Context, rows []schema.Row) ([]float64, error)
}
