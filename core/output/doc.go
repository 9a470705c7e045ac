// Package output serializes merge results to CSV.
//
// One row is written per canonical key, in the order the merger produced
// them (ascending key order). Numeric fields are written bare; every other
// field is double-quoted, so downstream tools can tell labels from values
// without guessing. The optional header row carries the feature display
// names for the positional format.
//
// The package also owns the overwrite confirmation prompt shown before an
// existing output file is replaced.
package output
