// Package buffer provides the borrowed, read-only byte region that views read from.
//
// A Buffer never allocates, frees or resizes memory. It records the byte slice
// handed to it by the external owner, so every offset computed against it can
// be checked against an explicit length. The owner must keep the memory alive
// and unmodified for as long as any Buffer or view over it is in use.
package buffer

import (
	"unsafe"

	"github.com/arloliu/colview/internal/hash"
)

// Buffer is a borrowed, contiguous, read-only byte region.
//
// The zero value is an empty buffer.
type Buffer struct {
	data []byte
}

// Wrap borrows b without copying it.
func Wrap(b []byte) Buffer {
	return Buffer{data: b}
}

// Len returns the buffer length in bytes.
func (b Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the borrowed bytes. The caller must not modify them.
func (b Buffer) Bytes() []byte {
	return b.data
}

// Pointer returns the address of the first byte, or nil for an empty buffer.
func (b Buffer) Pointer() unsafe.Pointer {
	if len(b.data) == 0 {
		return nil
	}

	return unsafe.Pointer(unsafe.SliceData(b.data))
}

// IsAligned reports whether the base address is a multiple of n.
//
// Empty buffers and n <= 1 are always aligned.
func (b Buffer) IsAligned(n int) bool {
	if n <= 1 || len(b.data) == 0 {
		return true
	}

	return uintptr(b.Pointer())%uintptr(n) == 0
}

// Fingerprint returns the xxHash64 of the first n bytes, clamped to the buffer length.
func (b Buffer) Fingerprint(n int) uint64 {
	n = max(0, min(n, len(b.data)))
	return hash.Bytes(b.data[:n])
}
