package dtype

import (
	"unsafe"

	"github.com/arloliu/colview/bitutil"
)

// BooleanType is the capability of the bit-packed logical type.
//
// Boolean is its only implementation.
type BooleanType interface {
	Primitive[bool]
	bitPacked()
}

// Boolean is the bit-packed boolean logical type.
//
// Element i is bit i&7 of byte i>>3, tested LSB-first.
type Boolean struct{}

var _ BooleanType = Boolean{}

func (Boolean) bitPacked() {}

func (Boolean) Name() string { return "bool" }

// Layout returns LayoutBitPacked.
func (Boolean) Layout() Layout {
	return LayoutBitPacked
}

// BitWidth returns 1.
func (Boolean) BitWidth() int {
	return 1
}

// ByteLen returns ceil(length/8), or -1 for a negative length.
func (Boolean) ByteLen(length int) int {
	if length < 0 {
		return -1
	}

	return bitutil.BytesForBits(length)
}

// Index returns bit i of buf.
func (Boolean) Index(buf []byte, i int) bool {
	return bitutil.GetBit(buf, i)
}

// IndexUnsafe returns bit i of the packed region starting at ptr.
func (Boolean) IndexUnsafe(ptr unsafe.Pointer, i int) bool {
	return bitutil.GetBitUnsafe(ptr, i)
}
