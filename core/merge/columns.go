package merge

import "fmt"

// columnsMerger extends nearestMerger to entries that hold rows of multiple
// columns. Statistics are computed independently per column and concatenated
// in column order.
type columnsMerger struct{}

// columnsFile is one file coerced into sample rows per integer key.
type columnsFile struct {
	keys []int // ascending
	rows map[int][][]float64
}

func (columnsMerger) Merge(files []Document, features []string) (*Result, error) {
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

	coerced := make([]columnsFile, len(files))
	for i, file := range indexed {
		cf := columnsFile{keys: file.keys, rows: make(map[int][][]float64, len(file.keys))}
		for _, key := range file.keys {
			raw, ok := file.values[key].([]any)
			if !ok {
				return nil, fmt.Errorf("%w: file %d, key %d: expected a list of rows, got %T",
					ErrBadValue, i, key, file.values[key])
			}
			rows := make([][]float64, len(raw))
			for j, sample := range raw {
				row, err := floatSlice(sample)
				if err != nil {
					return nil, fmt.Errorf("file %d, key %d: %w", i, key, err)
				}
				rows[j] = row
			}
			cf.rows[key] = rows
		}
		coerced[i] = cf
	}

	// The first row of the first file's first canonical key fixes the column
	// count; every other row must agree.
	canonical := coerced[0].keys
	if len(canonical) == 0 || len(coerced[0].rows[canonical[0]]) == 0 {
		return nil, fmt.Errorf("%w: no samples to derive the column count from", ErrBadValue)
	}
	nStats := len(coerced[0].rows[canonical[0]][0])
	for i, file := range coerced {
		for _, key := range file.keys {
			for _, row := range file.rows[key] {
				if len(row) != nStats {
					return nil, fmt.Errorf("%w: file %d, key %d has a row of %d columns, expected %d",
						ErrColumnCountMismatch, i, key, len(row), nStats)
				}
			}
		}
	}

	res := &Result{}
	for _, key := range canonical {
		pooled := make([][]float64, nStats)
		for _, file := range coerced {
			local := nearestKey(key, file.keys)
			for _, row := range file.rows[local] {
				for col, v := range row {
					pooled[col] = append(pooled[col], v)
				}
			}
		}
		stats := make([]float64, 0, 2*nStats)
		for col := 0; col < nStats; col++ {
			mean, std := meanStd(pooled[col])
			stats = append(stats, mean, std)
		}
		res.Rows = append(res.Rows, Row{Key: key, Stats: stats})
	}
	return res, nil
}
