package schema

import (
	"sort"
	"strings"
)

// FeatureRequest maps field names to raw JSON scalars.
type FeatureRequest map[string]any

// Row holds feature values in canonical order.
type Row []any

// ValidationError reports a key set that differs from the schema.
// Only Missing is rendered by Error; Unexpected is kept for callers and logs.
type ValidationError struct {
	Missing    []string
	Unexpected []string
}

func (e *ValidationError) Error() string {
	return "Missing fields: " + formatSet(e.Missing)
}

// Canonicalize checks that req carries exactly the registry's fields and
// projects it into canonical order. Values are passed through untouched.
func (r *Registry) Canonicalize(req FeatureRequest) (Row, error) {
	var missing []string
	for _, name := range r.fields {
		if _, ok := req[name]; !ok {
			missing = append(missing, name)
		}
	}

	var unexpected []string
	for name := range req {
		if !r.Has(name) {
			unexpected = append(unexpected, name)
		}
	}

	if len(missing) > 0 || len(unexpected) > 0 {
		sort.Strings(unexpected)
		return nil, &ValidationError{Missing: missing, Unexpected: unexpected}
	}

	row := make(Row, len(r.fields))
	for i, name := range r.fields {
		row[i] = req[name]
	}
	return row, nil
}

// formatSet renders names as a set literal: {'A', 'B'}, or set() when empty.
func formatSet(names []string) string {
	if len(names) == 0 {
		return "set()"
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(name)
		b.WriteByte('\'')
	}
	b.WriteByte('}')
	return b.String()
}
