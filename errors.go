package fenwick

import "errors"

// Contract violations panic with an error wrapping one of these values,
// so a caller that recovers can classify them with errors.Is.
var (
	// ErrEmpty signals an operation that needs at least one element.
	ErrEmpty = errors.New("fenwick: empty tree")
	// ErrInvalidSize signals a construction or reset with size ≤ 0.
	ErrInvalidSize = errors.New("fenwick: invalid size")
	// ErrIndexOutOfRange signals an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
	// ErrInvalidRange signals a closed range [first, last] with first > last.
	ErrInvalidRange = errors.New("fenwick: invalid range")
)
