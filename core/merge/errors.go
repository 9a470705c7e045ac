package merge

import "errors"

// All merge failures are fatal: validation runs before any statistics are
// computed and the whole run aborts on the first mismatch.
var (
	// ErrKeyMismatch indicates files disagree on their key sets.
	ErrKeyMismatch = errors.New("merge: key sets differ between files")

	// ErrKeyCountMismatch indicates files disagree on their number of keys.
	ErrKeyCountMismatch = errors.New("merge: number of keys differs between files")

	// ErrColumnCountMismatch indicates not every sample row carries the same
	// number of columns.
	ErrColumnCountMismatch = errors.New("merge: column counts differ between samples")

	// ErrStepCountMismatch indicates files disagree on their number of steps.
	ErrStepCountMismatch = errors.New("merge: step counts differ between files")

	// ErrPathNotFound indicates a nested feature path cannot be resolved
	// against a record.
	ErrPathNotFound = errors.New("merge: nested path not found")

	// ErrUnsupportedFormat indicates the requested format id is not registered.
	ErrUnsupportedFormat = errors.New("merge: unsupported format")

	// ErrFeatureNotAllowed indicates a feature list was supplied to a format
	// that merges top-level values only, or omitted for one that requires it.
	ErrFeatureNotAllowed = errors.New("merge: invalid feature selection for this format")

	// ErrBadValue indicates a document does not have the shape the chosen
	// format expects.
	ErrBadValue = errors.New("merge: unexpected value shape")
)
