package dtype

import "unsafe"

// Number is the set of native representations stored in the dense layout.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Native is the set of native representations a logical type may decode to.
type Native interface {
	Number | ~bool
}

// Layout identifies the physical layout family of a logical type.
type Layout uint8

const (
	LayoutDense     Layout = 0x1 // LayoutDense stores each element in a fixed-width slot.
	LayoutBitPacked Layout = 0x2 // LayoutBitPacked stores each element in one LSB-first bit.
)

func (l Layout) String() string {
	switch l {
	case LayoutDense:
		return "Dense"
	case LayoutBitPacked:
		return "BitPacked"
	default:
		return "Unknown"
	}
}

// Primitive is the base capability of a logical type with native representation N.
type Primitive[N Native] interface {
	// Name returns the logical type name, e.g. "int32" or "bool".
	Name() string

	// Layout returns the layout family the elements are stored in.
	Layout() Layout

	// BitWidth returns the number of bits one element occupies in the buffer.
	BitWidth() int

	// ByteLen returns the minimum buffer size in bytes holding length elements,
	// or -1 if that size does not fit in an int.
	ByteLen(length int) int

	// Index decodes element i from buf.
	//
	// The caller guarantees that element i lies inside buf; an index past the
	// end panics through slice bounds checking.
	Index(buf []byte, i int) N

	// IndexUnsafe decodes element i from the region starting at ptr without
	// any bounds check.
	IndexUnsafe(ptr unsafe.Pointer, i int) N
}

// ByteLen returns the minimum buffer size in bytes holding length elements of
// logical type T, or -1 if length is negative or the size overflows.
func ByteLen[N Native, T Primitive[N]](length int) int {
	var t T
	return t.ByteLen(length)
}
