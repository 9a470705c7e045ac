package merge

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// checkKeySets verifies that every file's key set equals the first file's.
// Exact-key formats align entries by identity, so any difference is fatal.
func checkKeySets(files []map[string]any) error {
	for i, file := range files[1:] {
		if len(file) != len(files[0]) {
			return fmt.Errorf("%w: files 0 and %d", ErrKeyMismatch, i+1)
		}
		for key := range files[0] {
			if _, ok := file[key]; !ok {
				return fmt.Errorf("%w: files 0 and %d", ErrKeyMismatch, i+1)
			}
		}
	}
	return nil
}

// sortedKeys returns a file's keys in ascending order.
func sortedKeys(file map[string]any) []string {
	keys := make([]string, 0, len(file))
	for key := range file {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// intKeyed is one file re-indexed by integer key. Decoders stringify mapping
// keys, so integer-keyed formats convert them back before aligning files.
type intKeyed struct {
	keys   []int // ascending
	values map[int]any
}

func intFile(doc Document, file int) (intKeyed, error) {
	m, err := asMapping(doc, file)
	if err != nil {
		return intKeyed{}, err
	}
	f := intKeyed{
		keys:   make([]int, 0, len(m)),
		values: make(map[int]any, len(m)),
	}
	for key, value := range m {
		k, err := cast.ToIntE(key)
		if err != nil {
			return intKeyed{}, fmt.Errorf("%w: file %d has non-integer key %q", ErrBadValue, file, key)
		}
		f.keys = append(f.keys, k)
		f.values[k] = value
	}
	sort.Ints(f.keys)
	return f, nil
}

// checkKeyCounts verifies that every file carries as many keys as the first.
// Integer-keyed formats tolerate differing key values (nearest-key matching
// reconciles them) but not differing cardinality.
func checkKeyCounts(files []intKeyed) error {
	for i, file := range files[1:] {
		if len(file.keys) != len(files[0].keys) {
			return fmt.Errorf("%w: files 0 and %d", ErrKeyCountMismatch, i+1)
		}
	}
	return nil
}

// nearestKey resolves target against an ascending key list by minimum
// absolute distance. The scan is stable, so the first minimum wins:
// equidistant candidates resolve to the lower key.
func nearestKey(target int, keys []int) int {
	best := keys[0]
	bestDist := absInt(target - best)
	for _, k := range keys[1:] {
		if d := absInt(target - k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
