package merge

import "fmt"

// nearestMerger pools integer-keyed sample lists across files, aligning runs
// whose step counts or timestamps drifted apart by resolving each canonical
// key to the closest key of every file.
type nearestMerger struct{}

func (nearestMerger) Merge(files []Document, features []string) (*Result, error) {
	if err := rejectFeatures(features); err != nil {
		return nil, err
	}

	indexed := make([]intKeyed, len(files))
	for i, doc := range files {
		f, err := intFile(doc, i)
		if err != nil {
			return nil, err
		}
		indexed[i] = f
	}
	if err := checkKeyCounts(indexed); err != nil {
		return nil, err
	}

	// The first file's sorted keys are canonical.
	res := &Result{}
	for _, key := range indexed[0].keys {
		var pooled []float64
		for i, file := range indexed {
			local := nearestKey(key, file.keys)
			samples, err := floatSlice(file.values[local])
			if err != nil {
				return nil, fmt.Errorf("file %d, key %d: %w", i, local, err)
			}
			pooled = append(pooled, samples...)
		}
		mean, std := meanStd(pooled)
		res.Rows = append(res.Rows, Row{Key: key, Stats: []float64{mean, std}})
	}
	return res, nil
}
