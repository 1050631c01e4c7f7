// Package view provides View, the typed random-access accessor over a columnar buffer.
//
// A View pairs a borrowed buffer.Buffer with a logical type T from the dtype
// package and an explicit element count. The read rule of T is bound when the
// type parameters are instantiated, so Value does not inspect any type tag at
// run time: it bounds-checks i and calls T's Index directly.
//
// # Accessors
//
//   - Value returns the element or an *errs.IndexOutOfBoundsError.
//   - At returns the element and false instead of an error.
//   - ValueUnchecked skips the bounds check. The caller must already know that
//     0 <= i < Len(); anything else is undefined behavior.
//
// # Example
//
//	backing := []int32{0, 0, 0, 42, 0}
//	v, err := view.New[int32, dtype.Int32](buffer.FromSlice(backing), 4)
//	if err != nil {
//	    return err
//	}
//	x, err := v.Value(3) // 42
//
// # Thread Safety
//
// A View is immutable. Concurrent reads are safe as long as the owner of the
// underlying memory does not modify it while any view exists.
package view

import (
	"fmt"
	"iter"

	"github.com/arloliu/colview/buffer"
	"github.com/arloliu/colview/dtype"
	"github.com/arloliu/colview/errs"
)

// View is a non-owning, immutable accessor over length elements of logical type T.
type View[N dtype.Native, T dtype.Primitive[N]] struct {
	buf         buffer.Buffer
	length      int
	fingerprint uint64
	checked     bool
}

// New creates a view over the first length elements of buf.
//
// It returns ErrNegativeLength for a negative length, ErrBufferTooShort when
// buf holds fewer than T.ByteLen(length) bytes, and, with WithAlignmentCheck,
// ErrMisalignedBuffer when a dense buffer is not aligned to size_of(N).
func New[N dtype.Native, T dtype.Primitive[N]](buf buffer.Buffer, length int, opts ...Option) (View[N, T], error) {
	cfg := defaultConfig()
	if err := applyOptions(cfg, opts...); err != nil {
		return View[N, T]{}, err
	}

	if length < 0 {
		return View[N, T]{}, fmt.Errorf("%w: %d", errs.ErrNegativeLength, length)
	}

	var t T
	need := t.ByteLen(length)
	if need < 0 || buf.Len() < need {
		return View[N, T]{}, fmt.Errorf("%w: %s x %d needs %d bytes, have %d",
			errs.ErrBufferTooShort, t.Name(), length, need, buf.Len())
	}

	if cfg.alignmentCheck && t.Layout() == dtype.LayoutDense {
		if align := t.BitWidth() / 8; !buf.IsAligned(align) {
			return View[N, T]{}, fmt.Errorf("%w: %s requires %d-byte alignment",
				errs.ErrMisalignedBuffer, t.Name(), align)
		}
	}

	v := View[N, T]{buf: buf, length: length}
	if cfg.mutationCheck {
		v.checked = true
		v.fingerprint = buf.Fingerprint(need)
	}

	return v, nil
}

// Len returns the number of elements in the view.
func (v View[N, T]) Len() int {
	return v.length
}

// Buffer returns the borrowed buffer.
func (v View[N, T]) Buffer() buffer.Buffer {
	return v.buf
}

// TypeName returns the name of the logical type T.
func (v View[N, T]) TypeName() string {
	var t T
	return t.Name()
}

// Layout returns the layout family of the logical type T.
func (v View[N, T]) Layout() dtype.Layout {
	var t T
	return t.Layout()
}

// Value returns element i.
//
// It returns an *errs.IndexOutOfBoundsError, matching errs.ErrIndexOutOfBounds,
// when i is outside [0, Len()).
func (v View[N, T]) Value(i int) (N, error) {
	if uint(i) >= uint(v.length) {
		var zero N
		return zero, &errs.IndexOutOfBoundsError{Index: i, Length: v.length}
	}

	var t T
	return t.Index(v.buf.Bytes(), i), nil
}

// At returns element i and true, or the zero value and false when i is
// outside [0, Len()).
func (v View[N, T]) At(i int) (N, bool) {
	if uint(i) >= uint(v.length) {
		var zero N
		return zero, false
	}

	var t T
	return t.Index(v.buf.Bytes(), i), true
}

// ValueUnchecked returns element i without any bounds check.
//
// The caller must guarantee 0 <= i < Len(). The result for any other index is
// undefined and may read memory outside the buffer.
func (v View[N, T]) ValueUnchecked(i int) N {
	var t T
	return t.IndexUnsafe(v.buf.Pointer(), i)
}

// All returns an iterator over index/value pairs in index order.
func (v View[N, T]) All() iter.Seq2[int, N] {
	return func(yield func(int, N) bool) {
		var t T
		data := v.buf.Bytes()
		for i := range v.length {
			if !yield(i, t.Index(data, i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in index order.
func (v View[N, T]) Values() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, val := range v.All() {
			if !yield(val) {
				return
			}
		}
	}
}

// Verify reports whether the bytes under the view are unchanged since New.
//
// It returns ErrBufferMutated if the view was created with WithMutationCheck
// and the fingerprint of its element bytes differs. Without the option it
// always returns nil.
func (v View[N, T]) Verify() error {
	if !v.checked {
		return nil
	}

	var t T
	if v.buf.Fingerprint(t.ByteLen(v.length)) != v.fingerprint {
		return fmt.Errorf("%w: %s view of %d elements", errs.ErrBufferMutated, t.Name(), v.length)
	}

	return nil
}
