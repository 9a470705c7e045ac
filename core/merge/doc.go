// Package merge combines the structured logs of repeated experiment runs
// into per-key aggregate statistics.
//
// Each supported input shape is handled by a Merger. All mergers consume the
// generically decoded documents produced by core/loader and emit a Result:
// one row of population statistics (mean and standard deviation pairs) per
// canonical key, in ascending key order.
//
// # Formats
//
//   - FormatFlat: each file maps a key to a list of samples. Key sets must
//     match exactly across files; matching lists are pooled.
//   - FormatNearest: like FormatFlat but keys are integers and do not need to
//     match exactly; each file contributes the entry whose key is closest.
//     This aligns time series logged at slightly different step counts.
//   - FormatColumns: like FormatNearest but every entry is a list of sample
//     rows, and each row carries the same number of columns. Statistics are
//     computed per column.
//   - FormatSteps: each file is a positional sequence of arbitrarily nested
//     records. Selected features are extracted from every record by walking a
//     comma-separated key path; statistics are computed across files per step.
//
// # Usage
//
//	m, err := merge.ForFormat(1)
//	res, err := m.Merge(docs, nil)
//	// res.Rows holds [key, mean, stddev] per canonical key
package merge
