package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// float64er matches json.Number from either JSON decoder.
type float64er interface {
	Float64() (float64, error)
}

func isMissingMarker(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "NA", "NaN":
		return true
	}
	return false
}

func numericValue(v any, impute float64) (float64, error) {
	switch x := v.(type) {
	case nil:
		return impute, nil
	case float64:
		if math.IsNaN(x) {
			return impute, nil
		}
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64er:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("could not convert %v to float: %w", x, err)
		}
		return f, nil
	case string:
		if isMissingMarker(x) {
			return impute, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("could not convert string to float: %q", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected a numeric value, got %T", v)
	}
}

func categoryValue(v any, impute string) (string, error) {
	switch x := v.(type) {
	case nil:
		return impute, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return impute, nil
		}
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("expected a categorical value, got %T", v)
	}
}
