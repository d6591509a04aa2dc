package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrOffsetOutOfRange indicates a character index outside [0, LenChars()].
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates start > end or a range past the buffer end.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrReadOnly indicates a mutation of a read-only buffer.
	ErrReadOnly = errors.New("buffer is read-only")
)
