// Package endian provides byte order engines for producing and checking dense
// column buffers.
//
// Dense views reinterpret element bytes in host byte order. Producers that
// write buffers for a view on the same host should use NativeEngine; producers
// writing for another host pick the engine matching that host.
//
// # Basic Usage
//
//	engine := endian.NativeEngine()
//	data := buffer.Encode(engine, []int32{1, 2, 3})
//	v, _ := view.New[int32, dtype.Int32](buffer.Wrap(data), 3)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeEngine = probeNative()

// probeNative inspects the in-memory layout of 0x0100 to find the host byte order.
func probeNative() EndianEngine {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// NativeEngine returns the engine matching the host byte order.
func NativeEngine() EndianEngine {
	return nativeEngine
}

// ForeignEngine returns the engine opposite to the host byte order.
func ForeignEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return nativeEngine == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return nativeEngine == binary.BigEndian
}

// IsNative reports whether engine uses the host byte order, meaning buffers it
// produces can be read by a dense view without swapping.
func IsNative(engine EndianEngine) bool {
	return engine == nativeEngine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
