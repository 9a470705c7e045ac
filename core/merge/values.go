package merge

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// asMapping coerces one document into a generic mapping.
func asMapping(doc Document, file int) (map[string]any, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: file %d is %T, expected a mapping", ErrBadValue, file, doc)
	}
	return m, nil
}

// asSequence coerces one document into a positional sequence of records.
func asSequence(doc Document, file int) ([]any, error) {
	s, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: file %d is %T, expected a sequence", ErrBadValue, file, doc)
	}
	return s, nil
}

// floatSlice coerces a decoded value into a list of samples. YAML and JSON
// hand back heterogeneous scalars (int, float64, numeric strings); cast
// normalizes them.
func floatSlice(v any) ([]float64, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of samples, got %T", ErrBadValue, v)
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d: %v", ErrBadValue, i, err)
		}
		out[i] = f
	}
	return out, nil
}

// meanStd returns the population mean and standard deviation of xs
// (divide by N, not N-1). An empty pool yields NaN for both.
func meanStd(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(xs)))
}
