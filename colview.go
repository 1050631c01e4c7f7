// Package colview provides zero-copy, random-access views over the raw
// buffers of columnar arrays.
//
// A column is a contiguous byte buffer plus an element count and a logical
// type. colview never copies or decodes the buffer up front: each access reads
// exactly the bytes of one element and returns its value.
//
// # Core Features
//
//   - Dense fixed-width columns (integers, floats, dates, times, timestamps,
//     durations) read by reinterpreting bytes in place
//   - Bit-packed boolean columns, one bit per element, LSB first
//   - Checked access returning an index-out-of-bounds error, plus an explicit
//     unchecked path for hot loops
//   - Buffers from heap slices, read-only memory maps, or decompressed
//     payloads (Zstd, S2, LZ4)
//
// # Basic Usage
//
//	values := []int32{1, 2, 3, 4}
//	v, _ := colview.NewInt32View(buffer.FromSlice(values), len(values))
//
//	x, err := v.Value(2) // 3, nil
//	_, err = v.Value(4)  // errs.ErrIndexOutOfBounds
//
// Boolean columns are bit-packed:
//
//	flags := buffer.Wrap([]byte{0b0000_1000})
//	b, _ := colview.NewBooleanView(flags, 8)
//	set, _ := b.Value(3) // true
//
// # Package Structure
//
// This package wraps view.New with one constructor per built-in logical type.
// User-defined logical types, and code generic over the element type, use the
// view and dtype packages directly.
package colview

import (
	"github.com/arloliu/colview/buffer"
	"github.com/arloliu/colview/dtype"
	"github.com/arloliu/colview/view"
)

// Concrete view types for the built-in logical types.
type (
	Int8View      = view.View[int8, dtype.Int8]
	Int16View     = view.View[int16, dtype.Int16]
	Int32View     = view.View[int32, dtype.Int32]
	Int64View     = view.View[int64, dtype.Int64]
	Uint8View     = view.View[uint8, dtype.Uint8]
	Uint16View    = view.View[uint16, dtype.Uint16]
	Uint32View    = view.View[uint32, dtype.Uint32]
	Uint64View    = view.View[uint64, dtype.Uint64]
	Float32View   = view.View[float32, dtype.Float32]
	Float64View   = view.View[float64, dtype.Float64]
	Date32View    = view.View[int32, dtype.Date32]
	Date64View    = view.View[int64, dtype.Date64]
	Time32View    = view.View[int32, dtype.Time32]
	Time64View    = view.View[int64, dtype.Time64]
	TimestampView = view.View[int64, dtype.Timestamp]
	DurationView  = view.View[int64, dtype.Duration]
	BooleanView   = view.View[bool, dtype.Boolean]
)

// NewInt8View creates a view of length int8 elements over buf.
//
// Returns an error if length is negative or buf is too short.
func NewInt8View(buf buffer.Buffer, length int, opts ...view.Option) (Int8View, error) {
	return view.New[int8, dtype.Int8](buf, length, opts...)
}

// NewInt16View creates a view of length int16 elements over buf.
func NewInt16View(buf buffer.Buffer, length int, opts ...view.Option) (Int16View, error) {
	return view.New[int16, dtype.Int16](buf, length, opts...)
}

// NewInt32View creates a view of length int32 elements over buf.
//
// Example:
//
//	v, err := colview.NewInt32View(buffer.FromSlice([]int32{1, 2, 3, 4}), 4,
//	    view.WithAlignmentCheck(),
//	)
func NewInt32View(buf buffer.Buffer, length int, opts ...view.Option) (Int32View, error) {
	return view.New[int32, dtype.Int32](buf, length, opts...)
}

// NewInt64View creates a view of length int64 elements over buf.
func NewInt64View(buf buffer.Buffer, length int, opts ...view.Option) (Int64View, error) {
	return view.New[int64, dtype.Int64](buf, length, opts...)
}

// NewUint8View creates a view of length uint8 elements over buf.
func NewUint8View(buf buffer.Buffer, length int, opts ...view.Option) (Uint8View, error) {
	return view.New[uint8, dtype.Uint8](buf, length, opts...)
}

// NewUint16View creates a view of length uint16 elements over buf.
func NewUint16View(buf buffer.Buffer, length int, opts ...view.Option) (Uint16View, error) {
	return view.New[uint16, dtype.Uint16](buf, length, opts...)
}

// NewUint32View creates a view of length uint32 elements over buf.
func NewUint32View(buf buffer.Buffer, length int, opts ...view.Option) (Uint32View, error) {
	return view.New[uint32, dtype.Uint32](buf, length, opts...)
}

// NewUint64View creates a view of length uint64 elements over buf.
func NewUint64View(buf buffer.Buffer, length int, opts ...view.Option) (Uint64View, error) {
	return view.New[uint64, dtype.Uint64](buf, length, opts...)
}

// NewFloat32View creates a view of length float32 elements over buf.
func NewFloat32View(buf buffer.Buffer, length int, opts ...view.Option) (Float32View, error) {
	return view.New[float32, dtype.Float32](buf, length, opts...)
}

// NewFloat64View creates a view of length float64 elements over buf.
func NewFloat64View(buf buffer.Buffer, length int, opts ...view.Option) (Float64View, error) {
	return view.New[float64, dtype.Float64](buf, length, opts...)
}

// NewDate32View creates a view of length days-since-epoch values over buf.
func NewDate32View(buf buffer.Buffer, length int, opts ...view.Option) (Date32View, error) {
	return view.New[int32, dtype.Date32](buf, length, opts...)
}

// NewDate64View creates a view of length milliseconds-since-epoch values over buf.
func NewDate64View(buf buffer.Buffer, length int, opts ...view.Option) (Date64View, error) {
	return view.New[int64, dtype.Date64](buf, length, opts...)
}

// NewTime32View creates a view of length 32-bit time-of-day values over buf.
func NewTime32View(buf buffer.Buffer, length int, opts ...view.Option) (Time32View, error) {
	return view.New[int32, dtype.Time32](buf, length, opts...)
}

// NewTime64View creates a view of length 64-bit time-of-day values over buf.
func NewTime64View(buf buffer.Buffer, length int, opts ...view.Option) (Time64View, error) {
	return view.New[int64, dtype.Time64](buf, length, opts...)
}

// NewTimestampView creates a view of length timestamps over buf.
//
// The unit (seconds, milliseconds, microseconds or nanoseconds) is not part
// of the view; callers interpret the returned integers.
func NewTimestampView(buf buffer.Buffer, length int, opts ...view.Option) (TimestampView, error) {
	return view.New[int64, dtype.Timestamp](buf, length, opts...)
}

// NewDurationView creates a view of length durations over buf.
func NewDurationView(buf buffer.Buffer, length int, opts ...view.Option) (DurationView, error) {
	return view.New[int64, dtype.Duration](buf, length, opts...)
}

// NewBooleanView creates a view of length bit-packed booleans over buf.
//
// buf must hold at least (length+7)/8 bytes. Bits past length in the last
// byte are ignored.
func NewBooleanView(buf buffer.Buffer, length int, opts ...view.Option) (BooleanView, error) {
	return view.New[bool, dtype.Boolean](buf, length, opts...)
}
