package buffer

import (
	"unsafe"

	"github.com/arloliu/colview/bitutil"
	"github.com/arloliu/colview/dtype"
	"github.com/arloliu/colview/endian"
)

// FromSlice borrows the memory of a typed slice as a dense buffer.
//
// No bytes are copied: the buffer aliases s, which must stay alive and
// unmodified while the buffer is in use.
func FromSlice[N dtype.Number](s []N) Buffer {
	if len(s) == 0 {
		return Buffer{}
	}

	var zero N
	size := int(unsafe.Sizeof(zero))
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(s)))

	return Buffer{data: unsafe.Slice(ptr, len(s)*size)}
}

// Encode writes values in the dense layout using the byte order of engine.
//
// A dense view on this host reads the result correctly only when engine is
// endian.NativeEngine().
func Encode[N dtype.Number](engine endian.EndianEngine, values []N) []byte {
	var zero N
	size := int(unsafe.Sizeof(zero))
	out := make([]byte, 0, len(values)*size)

	for i := range values {
		ptr := unsafe.Pointer(&values[i])
		switch size {
		case 1:
			out = append(out, *(*uint8)(ptr))
		case 2:
			out = engine.AppendUint16(out, *(*uint16)(ptr))
		case 4:
			out = engine.AppendUint32(out, *(*uint32)(ptr))
		case 8:
			out = engine.AppendUint64(out, *(*uint64)(ptr))
		}
	}

	return out
}

// PackBools writes values in the LSB-first bit-packed layout.
//
// The result has bitutil.BytesForBits(len(values)) bytes; padding bits in the
// final byte are zero.
func PackBools(values []bool) []byte {
	out := make([]byte, bitutil.BytesForBits(len(values)))
	for i, v := range values {
		if v {
			bitutil.SetBit(out, i)
		}
	}

	return out
}
