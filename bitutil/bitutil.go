// Package bitutil reads and writes single bits in LSB-first packed byte buffers.
//
// Bit i lives in byte i>>3 at bit position i&7, where position 0 is the least
// significant bit of the byte. This is the boolean column layout shared with
// Arrow-style producers and consumers, so the ordering must never change:
//
//	byte 0:  [b7 b6 b5 b4 b3 b2 b1 b0]
//	byte 1:  [b15 ... b8]
//
// A buffer holding n bits needs BytesForBits(n) bytes. Bits past n in the last
// byte are padding and carry no meaning.
package bitutil

import "unsafe"

// BitMask maps a bit position within a byte to its mask.
var BitMask = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}

// BytesForBits returns the number of bytes needed to hold n bits.
func BytesForBits(n int) int {
	return (n + 7) >> 3
}

// GetBit reports whether bit i of buf is set.
//
// The caller must guarantee i>>3 < len(buf); an out-of-range index panics
// through normal slice bounds checking.
func GetBit(buf []byte, i int) bool {
	return buf[i>>3]&BitMask[i&7] != 0
}

// GetBitUnsafe reports whether bit i is set in the packed region starting at ptr.
//
// No bounds check is performed. The caller must guarantee that byte i>>3 lies
// inside the region.
func GetBitUnsafe(ptr unsafe.Pointer, i int) bool {
	b := *(*byte)(unsafe.Add(ptr, i>>3))
	return b&BitMask[i&7] != 0
}

// SetBit sets bit i of buf.
func SetBit(buf []byte, i int) {
	buf[i>>3] |= BitMask[i&7]
}

// ClearBit clears bit i of buf.
func ClearBit(buf []byte, i int) {
	buf[i>>3] &^= BitMask[i&7]
}

// SetBitTo sets bit i of buf to v.
func SetBitTo(buf []byte, i int, v bool) {
	if v {
		SetBit(buf, i)
		return
	}
	ClearBit(buf, i)
}
