package schema_test

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
	"github.com/Bipul-Dubey/house-price-predictor/shared/schema/schematest"
)

func TestCanonicalize_AnyKeyOrderProducesSchemaOrder(t *testing.T) {
	reg := schema.Default()
	fields := reg.Fields()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 25; trial++ {
		order := rng.Perm(len(fields))
		req := make(schema.FeatureRequest, len(fields))
		for _, idx := range order {
			req[fields[idx]] = float64(idx*10 + trial)
		}

		row, err := reg.Canonicalize(req)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}
		if len(row) != len(fields) {
			t.Fatalf("trial %d: row length mismatch: got %d want %d", trial, len(row), len(fields))
		}
		for i, name := range fields {
			if row[i] != req[name] {
				t.Fatalf("trial %d: row[%d] (%s) = %v want %v", trial, i, name, row[i], req[name])
			}
		}
	}
}

func TestCanonicalize_SampleFeaturesAreComplete(t *testing.T) {
	row, err := schema.Default().Canonicalize(schematest.SampleFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row[0] != 1.0 {
		t.Fatalf("first value should be ID: got %v", row[0])
	}
	if got := row[len(row)-1]; got != "Normal" {
		t.Fatalf("last value should be Sale_Condition: got %v", got)
	}
}

func TestCanonicalize_ReportsExactlyMissingSubset(t *testing.T) {
	reg := schema.Default()
	fields := reg.Fields()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 25; trial++ {
		req := schematest.SampleFeatures()
		n := 1 + rng.Intn(len(fields))
		var dropped []string
		for _, idx := range rng.Perm(len(fields))[:n] {
			delete(req, fields[idx])
			dropped = append(dropped, fields[idx])
		}

		_, err := reg.Canonicalize(req)
		var verr *schema.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("trial %d: expected *ValidationError, got %v", trial, err)
		}

		got := append([]string(nil), verr.Missing...)
		sort.Strings(got)
		sort.Strings(dropped)
		if !reflect.DeepEqual(got, dropped) {
			t.Fatalf("trial %d: missing mismatch: got %v want %v", trial, got, dropped)
		}
		if len(verr.Unexpected) != 0 {
			t.Fatalf("trial %d: unexpected fields reported: %v", trial, verr.Unexpected)
		}
	}
}

func TestCanonicalize_MissingReportedInSchemaOrder(t *testing.T) {
	req := schematest.SampleFeatures()
	delete(req, "Sale_Type")
	delete(req, "Lot_Area")
	delete(req, "ID")

	_, err := schema.Default().Canonicalize(req)
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	want := []string{"ID", "Lot_Area", "Sale_Type"}
	if !reflect.DeepEqual(verr.Missing, want) {
		t.Fatalf("missing mismatch: got %v want %v", verr.Missing, want)
	}
	if got, want := err.Error(), "Missing fields: {'ID', 'Lot_Area', 'Sale_Type'}"; got != want {
		t.Fatalf("message mismatch: got %q want %q", got, want)
	}
}

func TestCanonicalize_ExtraFieldFailsButIsNotNamed(t *testing.T) {
	req := schematest.SampleFeatures()
	req["Swimming_Pool_Heater"] = "Gas"

	row, err := schema.Default().Canonicalize(req)
	if row != nil {
		t.Fatalf("expected no row, got %v", row)
	}
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", verr.Missing)
	}
	if !reflect.DeepEqual(verr.Unexpected, []string{"Swimming_Pool_Heater"}) {
		t.Fatalf("unexpected mismatch: got %v", verr.Unexpected)
	}
	if got, want := err.Error(), "Missing fields: set()"; got != want {
		t.Fatalf("message mismatch: got %q want %q", got, want)
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	reg := schema.Default()
	req := schematest.SampleFeatures()

	first, err := reg.Canonicalize(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := reg.Canonicalize(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("rows differ between calls:\n%v\n%v", first, second)
	}
}

func TestCanonicalize_PassesValuesThroughUntouched(t *testing.T) {
	reg := schema.MustNewRegistry([]string{"a", "b", "c"})

	row, err := reg.Canonicalize(schema.FeatureRequest{"c": nil, "a": "10", "b": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := schema.Row{"10", true, nil}
	if !reflect.DeepEqual(row, want) {
		t.Fatalf("row mismatch: got %#v want %#v", row, want)
	}
}
