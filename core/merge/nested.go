package merge

import (
	"fmt"
	"strconv"
	"strings"
)

// splitPath splits a comma-separated feature path into its key segments.
func splitPath(path string) []string {
	return strings.Split(path, ",")
}

// featureName derives a feature's display name: the last path segment.
func featureName(path string) string {
	segments := splitPath(path)
	return segments[len(segments)-1]
}

// walkPath resolves a feature path against a nested record. Mapping segments
// index by key, sequence segments by integer position. An empty path returns
// the record itself.
func walkPath(record any, path []string) (any, error) {
	v := record
	for _, segment := range path {
		switch cur := v.(type) {
		case map[string]any:
			next, ok := cur[segment]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrPathNotFound, segment)
			}
			v = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(cur) {
				return nil, fmt.Errorf("%w: %q", ErrPathNotFound, segment)
			}
			v = cur[idx]
		default:
			return nil, fmt.Errorf("%w: %q cannot index a %T", ErrPathNotFound, segment, v)
		}
	}
	return v, nil
}
