package merge

import "fmt"

// flatMerger pools the sample lists of identically keyed mappings.
type flatMerger struct{}

func (flatMerger) Merge(files []Document, features []string) (*Result, error) {
	if err := rejectFeatures(features); err != nil {
		return nil, err
	}

	mappings := make([]map[string]any, len(files))
	for i, doc := range files {
		m, err := asMapping(doc, i)
		if err != nil {
			return nil, err
		}
		mappings[i] = m
	}
	if err := checkKeySets(mappings); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, key := range sortedKeys(mappings[0]) {
		var pooled []float64
		for i, file := range mappings {
			samples, err := floatSlice(file[key])
			if err != nil {
				return nil, fmt.Errorf("file %d, key %q: %w", i, key, err)
			}
			pooled = append(pooled, samples...)
		}
		mean, std := meanStd(pooled)
		res.Rows = append(res.Rows, Row{Key: key, Stats: []float64{mean, std}})
	}
	return res, nil
}
