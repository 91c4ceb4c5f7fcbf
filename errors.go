package fft

import "errors"

// Sentinel errors returned by FFT operations.
var (
	// ErrInvalidSize is returned when a requested transform length is not
	// a positive integer, or (for set-size variants that require an exact
	// match) cannot be used as-is.
	ErrInvalidSize = errors.New("fft: invalid transform size")

	// ErrNilSlice is returned when a nil slice is passed to a transform
	// method.
	ErrNilSlice = errors.New("fft: nil slice")

	// ErrLengthMismatch is returned when an input or output slice's length
	// does not match the size the FFT instance is configured for.
	ErrLengthMismatch = errors.New("fft: slice length mismatch")
)
