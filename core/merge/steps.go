package merge

import (
	"fmt"

	"github.com/spf13/cast"
)

// stepsMerger aligns files by step position and aggregates selected nested
// features across files. The only merger that emits a header.
type stepsMerger struct{}

func (stepsMerger) Merge(files []Document, features []string) (*Result, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: this format requires at least one feature path", ErrFeatureNotAllowed)
	}

	steps := make([][]any, len(files))
	for i, doc := range files {
		s, err := asSequence(doc, i)
		if err != nil {
			return nil, err
		}
		steps[i] = s
	}
	nSteps := len(steps[0])
	for i, file := range steps[1:] {
		if len(file) != nSteps {
			return nil, fmt.Errorf("%w: files 0 and %d", ErrStepCountMismatch, i+1)
		}
	}

	names := make([]string, len(features))
	paths := make([][]string, len(features))
	for i, feature := range features {
		names[i] = featureName(feature)
		paths[i] = splitPath(feature)
	}

	res := &Result{Header: names}
	for step := 0; step < nSteps; step++ {
		stats := make([]float64, 0, 2*len(features))
		for f, path := range paths {
			values := make([]float64, len(steps))
			for i, file := range steps {
				raw, err := walkPath(file[step], path)
				if err != nil {
					return nil, fmt.Errorf("file %d, step %d, feature %q: %w", i, step, features[f], err)
				}
				v, err := cast.ToFloat64E(raw)
				if err != nil {
					return nil, fmt.Errorf("%w: file %d, step %d, feature %q: %v",
						ErrBadValue, i, step, features[f], err)
				}
				values[i] = v
			}
			mean, std := meanStd(values)
			stats = append(stats, mean, std)
		}
		res.Rows = append(res.Rows, Row{Key: step, Stats: stats})
	}
	return res, nil
}
