package scoring

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
)

func testRegistry() *schema.Registry {
	return schema.MustNewRegistry([]string{"area", "zone", "year"})
}

func testSpec() PipelineSpec {
	return PipelineSpec{
		Name:      "test",
		Version:   "1",
		Intercept: 100,
		Numeric: []NumericStep{
			{Field: "area", Weight: 2, Mean: 10, Scale: 5, Impute: 10},
			{Field: "year", Weight: 1, Mean: 2000, Scale: 10, Impute: 2000},
		},
		Categorical: []CategoricalStep{
			{Field: "zone", Weights: map[string]float64{"RL": 7, "RM": -3}, Unknown: 0.5, Impute: "RL"},
		},
	}
}

func mustPipeline(t *testing.T, spec PipelineSpec) *Pipeline {
	t.Helper()
	p, err := NewPipeline(spec, testRegistry())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func TestPipeline_PredictLinearSum(t *testing.T) {
	p := mustPipeline(t, testSpec())

	got, err := p.Predict(context.Background(), []schema.Row{
		{20.0, "RM", 2010.0},
		{nil, "Other", "NA"},
		{"15", "RL", 2000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{102, 100.5, 109}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("prediction %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestPipeline_Log1pTarget(t *testing.T) {
	spec := testSpec()
	spec.Intercept = math.Log1p(250000)
	spec.TargetTransform = TransformLog1p
	spec.Numeric = []NumericStep{{Field: "area"}}
	spec.Categorical = nil
	p := mustPipeline(t, spec)

	got, err := p.Predict(context.Background(), []schema.Row{{1.0, "RL", 2000.0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got[0]-250000) > 1e-6 {
		t.Fatalf("got %v want 250000", got[0])
	}
}

func TestPipeline_BadNumericValue(t *testing.T) {
	p := mustPipeline(t, testSpec())

	_, err := p.Predict(context.Background(), []schema.Row{{"large", "RL", 2000.0}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), `feature "area"`) {
		t.Fatalf("error should name the feature: %v", err)
	}

	_, err = p.Predict(context.Background(), []schema.Row{{1.0, "RL", true}})
	if err == nil || !strings.Contains(err.Error(), "bool") {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestPipeline_BatchErrorNamesRow(t *testing.T) {
	p := mustPipeline(t, testSpec())

	_, err := p.Predict(context.Background(), []schema.Row{
		{1.0, "RL", 2000.0},
		{"x", "RL", 2000.0},
	})
	if err == nil || !strings.HasPrefix(err.Error(), "row 1:") {
		t.Fatalf("expected row-prefixed error, got %v", err)
	}
}

func TestPipeline_RowWidthMismatch(t *testing.T) {
	p := mustPipeline(t, testSpec())

	_, err := p.Predict(context.Background(), []schema.Row{{1.0, "RL"}})
	if err == nil || !strings.Contains(err.Error(), "expected 3 features, got 2") {
		t.Fatalf("expected width error, got %v", err)
	}
}

func TestPipeline_NonFinite(t *testing.T) {
	spec := testSpec()
	spec.Intercept = math.MaxFloat64
	spec.Numeric = []NumericStep{{Field: "area", Weight: math.MaxFloat64, Scale: 1}}
	p := mustPipeline(t, spec)

	_, err := p.Predict(context.Background(), []schema.Row{{10.0, "RL", 2000.0}})
	if err == nil || !strings.Contains(err.Error(), "non-finite") {
		t.Fatalf("expected non-finite error, got %v", err)
	}
}

func TestPipeline_CanceledContext(t *testing.T) {
	p := mustPipeline(t, testSpec())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Predict(ctx, []schema.Row{{1.0, "RL", 2000.0}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewPipeline_Rejects(t *testing.T) {
	unknown := testSpec()
	unknown.Numeric = append(unknown.Numeric, NumericStep{Field: "pool"})

	dup := testSpec()
	dup.Categorical = append(dup.Categorical, CategoricalStep{Field: "area"})

	transform := testSpec()
	transform.TargetTransform = "sqrt"

	empty := PipelineSpec{Name: "empty"}

	cases := map[string]PipelineSpec{
		"unknown field":   unknown,
		"duplicate field": dup,
		"bad transform":   transform,
		"no steps":        empty,
	}
	for name, spec := range cases {
		if _, err := NewPipeline(spec, testRegistry()); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCategoryValue_FormatsScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{60.0, "60"},
		{2.5, "2.5"},
		{true, "true"},
		{"", "fallback"},
		{nil, "fallback"},
		{"NA", "NA"},
	}
	for _, tc := range cases {
		got, err := categoryValue(tc.in, "fallback")
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%v: got %q want %q", tc.in, got, tc.want)
		}
	}
}
