package merge

import (
	"fmt"
	"sort"
)

// Format identifies one of the supported input shapes by numeric id.
type Format int

const (
	FormatFlat    Format = iota // mapping key -> samples, exact keys
	FormatNearest               // mapping int key -> samples, nearest keys
	FormatColumns               // mapping int key -> sample rows, per-column stats
	FormatSteps                 // sequence of records, nested feature extraction
)

// mergers is the process-wide strategy table, populated here and never
// mutated at runtime.
var mergers = map[Format]Merger{
	FormatFlat:    flatMerger{},
	FormatNearest: nearestMerger{},
	FormatColumns: columnsMerger{},
	FormatSteps:   stepsMerger{},
}

// Descriptions holds the user-facing help text for each format.
var Descriptions = map[Format]string{
	FormatFlat: "each file is a mapping from a key to a list of values; " +
		"matching lists are collapsed into a single statistic; all key sets must match",
	FormatNearest: "like format 0 but keys are integers and do not need to match exactly; " +
		"the closest entry of each file is selected",
	FormatColumns: "like format 1 but every entry holds rows of multiple columns; " +
		"statistics are computed per column",
	FormatSteps: "each file is a sequence of nested records; selected features are " +
		"extracted per step and aggregated across files (requires --nested)",
}

// ForFormat returns the merger registered under the given format id.
func ForFormat(id int) (Merger, error) {
	m, ok := mergers[Format(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, id)
	}
	return m, nil
}

// Formats returns all registered format ids in ascending order.
func Formats() []Format {
	ids := make([]Format, 0, len(mergers))
	for id := range mergers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// rejectFeatures guards the formats that merge top-level values only.
func rejectFeatures(features []string) error {
	if len(features) > 0 {
		return fmt.Errorf("%w: this format merges top-level values only", ErrFeatureNotAllowed)
	}
	return nil
}
