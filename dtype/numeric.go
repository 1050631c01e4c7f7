package dtype

import (
	"math"
	"unsafe"
)

// NumericType is the capability of logical types stored in the dense layout.
//
// It can only be satisfied by embedding Numeric[N].
type NumericType[N Number] interface {
	Primitive[N]
	dense()
}

// Numeric supplies the dense read rule to the logical type that embeds it.
//
// Element i occupies size_of(N) bytes at byte offset i*size_of(N). The bytes
// are reinterpreted in place as N in host byte order, without copying the
// buffer; only the decoded value is returned.
type Numeric[N Number] struct{}

func (Numeric[N]) dense() {}

// Layout returns LayoutDense.
func (Numeric[N]) Layout() Layout {
	return LayoutDense
}

// BitWidth returns 8 * size_of(N).
func (Numeric[N]) BitWidth() int {
	var zero N
	return int(unsafe.Sizeof(zero)) * 8
}

// ByteLen returns length * size_of(N), or -1 on overflow.
func (Numeric[N]) ByteLen(length int) int {
	var zero N
	size := int(unsafe.Sizeof(zero))
	if length < 0 || length > math.MaxInt/size {
		return -1
	}

	return length * size
}

// Index reads the element at byte offset i*size_of(N) of buf.
func (Numeric[N]) Index(buf []byte, i int) N {
	var zero N
	size := int(unsafe.Sizeof(zero))
	off := i * size
	_ = buf[off+size-1] // bounds check against len, not cap

	return *(*N)(unsafe.Pointer(&buf[off]))
}

// IndexUnsafe reads the element at byte offset i*size_of(N) from ptr.
func (Numeric[N]) IndexUnsafe(ptr unsafe.Pointer, i int) N {
	var zero N
	return *(*N)(unsafe.Add(ptr, uintptr(i)*unsafe.Sizeof(zero)))
}

// Fixed-width integer and floating point types.
type (
	Int8    struct{ Numeric[int8] }
	Int16   struct{ Numeric[int16] }
	Int32   struct{ Numeric[int32] }
	Int64   struct{ Numeric[int64] }
	Uint8   struct{ Numeric[uint8] }
	Uint16  struct{ Numeric[uint16] }
	Uint32  struct{ Numeric[uint32] }
	Uint64  struct{ Numeric[uint64] }
	Float32 struct{ Numeric[float32] }
	Float64 struct{ Numeric[float64] }
)

func (Int8) Name() string    { return "int8" }
func (Int16) Name() string   { return "int16" }
func (Int32) Name() string   { return "int32" }
func (Int64) Name() string   { return "int64" }
func (Uint8) Name() string   { return "uint8" }
func (Uint16) Name() string  { return "uint16" }
func (Uint32) Name() string  { return "uint32" }
func (Uint64) Name() string  { return "uint64" }
func (Float32) Name() string { return "float32" }
func (Float64) Name() string { return "float64" }

// Temporal types stored as plain integers in the dense layout.
type (
	// Date32 is the number of days since the Unix epoch.
	Date32 struct{ Numeric[int32] }
	// Date64 is the number of milliseconds since the Unix epoch.
	Date64 struct{ Numeric[int64] }
	// Time32 is a time of day in seconds or milliseconds.
	Time32 struct{ Numeric[int32] }
	// Time64 is a time of day in microseconds or nanoseconds.
	Time64 struct{ Numeric[int64] }
	// Timestamp is an instant as an integer offset from the Unix epoch.
	Timestamp struct{ Numeric[int64] }
	// Duration is an elapsed time as an integer count of units.
	Duration struct{ Numeric[int64] }
)

func (Date32) Name() string    { return "date32" }
func (Date64) Name() string    { return "date64" }
func (Time32) Name() string    { return "time32" }
func (Time64) Name() string    { return "time64" }
func (Timestamp) Name() string { return "timestamp" }
func (Duration) Name() string  { return "duration" }

var (
	_ NumericType[int8]    = Int8{}
	_ NumericType[int16]   = Int16{}
	_ NumericType[int32]   = Int32{}
	_ NumericType[int64]   = Int64{}
	_ NumericType[uint8]   = Uint8{}
	_ NumericType[uint16]  = Uint16{}
	_ NumericType[uint32]  = Uint32{}
	_ NumericType[uint64]  = Uint64{}
	_ NumericType[float32] = Float32{}
	_ NumericType[float64] = Float64{}
	_ NumericType[int32]   = Date32{}
	_ NumericType[int64]   = Date64{}
	_ NumericType[int32]   = Time32{}
	_ NumericType[int64]   = Time64{}
	_ NumericType[int64]   = Timestamp{}
	_ NumericType[int64]   = Duration{}
)
