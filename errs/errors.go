// Package errs defines the sentinel errors returned by colview packages.
//
// Callers should compare against these values with errors.Is, since most
// call sites wrap them with additional context.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is matched by every IndexOutOfBoundsError.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrNegativeLength is returned when a view is created with a negative element count.
	ErrNegativeLength = errors.New("negative array length")
	// ErrBufferTooShort is returned when a buffer cannot hold the declared number of elements.
	ErrBufferTooShort = errors.New("buffer too short for declared length")
	// ErrMisalignedBuffer is returned when alignment checking is enabled and the
	// buffer base address is not aligned to the native element size.
	ErrMisalignedBuffer = errors.New("buffer is not aligned to native element size")
	// ErrBufferMutated is returned by view verification when the bytes under a view
	// changed after the view was created.
	ErrBufferMutated = errors.New("buffer mutated while borrowed")

	// ErrProviderClosed is returned when a buffer is requested from a closed provider.
	ErrProviderClosed = errors.New("buffer provider is closed")
	// ErrInvalidCompression is returned for unknown compression types.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrEmptyPath is returned when a file-backed provider is opened with an empty path.
	ErrEmptyPath = errors.New("empty file path")
)

// IndexOutOfBoundsError reports a checked access outside [0, Length).
type IndexOutOfBoundsError struct {
	Index  int
	Length int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Length)
}

// Is reports whether target is ErrIndexOutOfBounds.
func (e *IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}
