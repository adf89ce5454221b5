package engine

import "errors"

// Sentinel errors. Functions wrap these with context; match with errors.Is.
var (
	// ErrOutOfRange is returned by EvenNumbers when the upper limit is below 1.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrOverflow is returned by Squares when a square exceeds the int32 range.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrNilFamilies is returned by FamilyStatistics for a nil families slice.
	ErrNilFamilies = errors.New("families must not be nil")

	// ErrUnknownQuery is returned by Execute for an unrecognized query name.
	ErrUnknownQuery = errors.New("unknown query")
)
