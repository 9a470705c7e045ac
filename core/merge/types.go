package merge

// Document is the in-memory form of one loaded input file. Loaders decode
// YAML/JSON generically (maps, slices, scalars); each merger coerces the
// document into the shape its format expects and rejects anything else.
type Document = any

// Row holds the computed statistics for one canonical key.
type Row struct {
	// Key is the canonical key this row was aggregated under. It is a string
	// for FormatFlat and an int for the integer-keyed and positional formats.
	Key any

	// Stats is the flattened sequence of [mean, stddev] pairs, one pair per
	// tracked quantity (a single pair for the flat formats, one per column
	// for FormatColumns, one per feature for FormatSteps).
	Stats []float64
}

// Result is the outcome of one merge: rows in ascending canonical key order,
// plus an optional header of feature display names. Only FormatSteps
// produces a header; it is nil for every other format.
type Result struct {
	Rows   []Row
	Header []string
}

// Merger merges the loaded documents of all input files into one Result.
//
// features selects nested feature paths for formats that support extraction;
// formats that merge top-level values reject a non-empty features list.
type Merger interface {
	Merge(files []Document, features []string) (*Result, error)
}
