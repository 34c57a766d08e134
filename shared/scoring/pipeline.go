package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
)

const TransformLog1p = "log1p"

// NumericStep standardizes one numeric column and weights it.
type NumericStep struct {
	Field  string  `json:"field" yaml:"field"`
	Weight float64 `json:"weight" yaml:"weight"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Scale  float64 `json:"scale" yaml:"scale"`
	Impute float64 `json:"impute" yaml:"impute"`
}

// CategoricalStep is a one-hot encoded column folded into per-category weights.
type CategoricalStep struct {
	Field   string             `json:"field" yaml:"field"`
	Weights map[string]float64 `json:"weights" yaml:"weights"`
	Unknown float64            `json:"unknown" yaml:"unknown"`
	Impute  string             `json:"impute" yaml:"impute"`
}

// PipelineSpec is the on-disk form of a trained linear pipeline.
type PipelineSpec struct {
	Name            string            `json:"name" yaml:"name"`
	Version         string            `json:"version" yaml:"version"`
	Intercept       float64           `json:"intercept" yaml:"intercept"`
	TargetTransform string            `json:"target_transform" yaml:"target_transform"`
	Numeric         []NumericStep     `json:"numeric" yaml:"numeric"`
	Categorical     []CategoricalStep `json:"categorical" yaml:"categorical"`
}

type numericColumn struct {
	NumericStep
	pos int
}

type categoricalColumn struct {
	CategoricalStep
	pos int
}

// Pipeline is a compiled PipelineSpec bound to a registry's column positions.
// It is read-only after construction.
type Pipeline struct {
	name        string
	version     string
	width       int
	intercept   float64
	transform   string
	numeric     []numericColumn
	categorical []categoricalColumn
}

// NewPipeline compiles spec against reg. Every referenced field must exist
// in reg and appear at most once.
func NewPipeline(spec PipelineSpec, reg *schema.Registry) (*Pipeline, error) {
	switch spec.TargetTransform {
	case "", TransformLog1p:
	default:
		return nil, fmt.Errorf("unsupported target transform %q", spec.TargetTransform)
	}
	if len(spec.Numeric) == 0 && len(spec.Categorical) == 0 {
		return nil, errors.New("pipeline has no feature steps")
	}

	p := &Pipeline{
		name:      spec.Name,
		version:   spec.Version,
		width:     reg.Len(),
		intercept: spec.Intercept,
		transform: spec.TargetTransform,
	}

	used := make(map[string]bool)
	resolve := func(field string) (int, error) {
		pos, ok := reg.Index(field)
		if !ok {
			return 0, fmt.Errorf("field %q is not part of the schema", field)
		}
		if used[field] {
			return 0, fmt.Errorf("field %q is referenced more than once", field)
		}
		used[field] = true
		return pos, nil
	}

	for _, step := range spec.Numeric {
		pos, err := resolve(step.Field)
		if err != nil {
			return nil, err
		}
		if step.Scale == 0 {
			step.Scale = 1
		}
		p.numeric = append(p.numeric, numericColumn{NumericStep: step, pos: pos})
	}
	for _, step := range spec.Categorical {
		pos, err := resolve(step.Field)
		if err != nil {
			return nil, err
		}
		p.categorical = append(p.categorical, categoricalColumn{CategoricalStep: step, pos: pos})
	}

	return p, nil
}

func (p *Pipeline) Name() string    { return p.name }
func (p *Pipeline) Version() string { return p.version }

// Predict scores each row. Any row that cannot be scored fails the whole call.
func (p *Pipeline) Predict(ctx context.Context, rows []schema.Row) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := p.score(row)
		if err != nil {
			if len(rows) == 1 {
				return nil, err
			}
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (p *Pipeline) score(row schema.Row) (float64, error) {
	if len(row) != p.width {
		return 0, fmt.Errorf("expected %d features, got %d", p.width, len(row))
	}

	sum := p.intercept
	for _, col := range p.numeric {
		x, err := numericValue(row[col.pos], col.Impute)
		if err != nil {
			return 0, fmt.Errorf("feature %q: %w", col.Field, err)
		}
		sum += col.Weight * (x - col.Mean) / col.Scale
	}
	for _, col := range p.categorical {
		c, err := categoryValue(row[col.pos], col.Impute)
		if err != nil {
			return 0, fmt.Errorf("feature %q: %w", col.Field, err)
		}
		if w, ok := col.Weights[c]; ok {
			sum += w
		} else {
			sum += col.Unknown
		}
	}

	if p.transform == TransformLog1p {
		sum = math.Expm1(sum)
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, errors.New("model produced a non-finite prediction")
	}
	return sum, nil
}
