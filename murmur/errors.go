package murmur

import "errors"

// Sentinel error kinds. Use errors.Is to test for a specific kind; the
// concrete error returned by a function always wraps one of these with
// additional context via fmt.Errorf("...: %w", ...).
var (
	// ErrEmptySpec is returned when a retention spec list has no entries.
	ErrEmptySpec = errors.New("murmur: empty retention spec")

	// ErrInvalidSpec is returned when a retention spec string cannot be
	// parsed (bad integer, unknown unit, missing colon).
	ErrInvalidSpec = errors.New("murmur: invalid retention spec")

	// ErrStructuralViolation is returned when a parsed archive list fails
	// one of the cascade invariants (I1-I4).
	ErrStructuralViolation = errors.New("murmur: structural violation")

	// ErrIoError wraps an underlying filesystem error.
	ErrIoError = errors.New("murmur: i/o error")

	// ErrCorruptFile is returned for a short read of a header, an unknown
	// aggregation code, or an archive_count of 0 on open.
	ErrCorruptFile = errors.New("murmur: corrupt file")

	// ErrOutOfRange is returned when a timestamp is older than the
	// database's max retention, or is in the future.
	ErrOutOfRange = errors.New("murmur: timestamp out of range")

	// ErrAlreadyExists is returned by Create when the target path exists.
	ErrAlreadyExists = errors.New("murmur: file already exists")
)
