package colview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colview/buffer"
	"github.com/arloliu/colview/dtype"
	"github.com/arloliu/colview/errs"
	"github.com/arloliu/colview/view"
)

// TestNewInt32View verifies checked access over a dense int32 column.
func TestNewInt32View(t *testing.T) {
	values := []int32{1, 2, 3, 4}

	v, err := NewInt32View(buffer.FromSlice(values), len(values))
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())
	require.Equal(t, "int32", v.TypeName())

	x, err := v.Value(2)
	require.NoError(t, err)
	require.Equal(t, int32(3), x)

	_, err = v.Value(4)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)

	var oob *errs.IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	require.Equal(t, 4, oob.Index)
	require.Equal(t, 4, oob.Length)
}

// TestNewBooleanView verifies bit-packed access.
func TestNewBooleanView(t *testing.T) {
	v, err := NewBooleanView(buffer.Wrap([]byte{8}), 8)
	require.NoError(t, err)
	require.Equal(t, dtype.LayoutBitPacked, v.Layout())

	for i := range 8 {
		got, err := v.Value(i)
		require.NoError(t, err)
		require.Equal(t, i == 3, got, "bit %d", i)
	}
}

// TestConstructors verifies every constructor binds the expected logical type.
func TestConstructors(t *testing.T) {
	buf := buffer.Wrap(make([]byte, 64))

	names := map[string]func() (string, error){
		"int8":      func() (string, error) { v, err := NewInt8View(buf, 8); return v.TypeName(), err },
		"int16":     func() (string, error) { v, err := NewInt16View(buf, 8); return v.TypeName(), err },
		"int32":     func() (string, error) { v, err := NewInt32View(buf, 8); return v.TypeName(), err },
		"int64":     func() (string, error) { v, err := NewInt64View(buf, 8); return v.TypeName(), err },
		"uint8":     func() (string, error) { v, err := NewUint8View(buf, 8); return v.TypeName(), err },
		"uint16":    func() (string, error) { v, err := NewUint16View(buf, 8); return v.TypeName(), err },
		"uint32":    func() (string, error) { v, err := NewUint32View(buf, 8); return v.TypeName(), err },
		"uint64":    func() (string, error) { v, err := NewUint64View(buf, 8); return v.TypeName(), err },
		"float32":   func() (string, error) { v, err := NewFloat32View(buf, 8); return v.TypeName(), err },
		"float64":   func() (string, error) { v, err := NewFloat64View(buf, 8); return v.TypeName(), err },
		"date32":    func() (string, error) { v, err := NewDate32View(buf, 8); return v.TypeName(), err },
		"date64":    func() (string, error) { v, err := NewDate64View(buf, 8); return v.TypeName(), err },
		"time32":    func() (string, error) { v, err := NewTime32View(buf, 8); return v.TypeName(), err },
		"time64":    func() (string, error) { v, err := NewTime64View(buf, 8); return v.TypeName(), err },
		"timestamp": func() (string, error) { v, err := NewTimestampView(buf, 8); return v.TypeName(), err },
		"duration":  func() (string, error) { v, err := NewDurationView(buf, 8); return v.TypeName(), err },
		"bool":      func() (string, error) { v, err := NewBooleanView(buf, 8); return v.TypeName(), err },
	}

	for want, fn := range names {
		t.Run(want, func(t *testing.T) {
			got, err := fn()
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

// TestConstructors_BufferTooShort verifies length is validated against the buffer.
func TestConstructors_BufferTooShort(t *testing.T) {
	buf := buffer.Wrap(make([]byte, 15))

	_, err := NewInt32View(buf, 4)
	require.ErrorIs(t, err, errs.ErrBufferTooShort)

	_, err = NewFloat64View(buf, 2)
	require.ErrorIs(t, err, errs.ErrBufferTooShort)

	_, err = NewBooleanView(buf, 121)
	require.ErrorIs(t, err, errs.ErrBufferTooShort)

	_, err = NewInt8View(buf, -1)
	require.ErrorIs(t, err, errs.ErrNegativeLength)
}

// TestConstructors_Options verifies view options pass through.
func TestConstructors_Options(t *testing.T) {
	raw := buffer.FromSlice([]int64{10, 20, 30}).Bytes()

	v, err := NewTimestampView(buffer.Wrap(raw), 3, view.WithMutationCheck())
	require.NoError(t, err)
	require.NoError(t, v.Verify())

	raw[8] ^= 0xff
	require.ErrorIs(t, v.Verify(), errs.ErrBufferMutated)

	_, err = NewInt64View(buffer.Wrap(raw[1:]), 2, view.WithAlignmentCheck())
	require.ErrorIs(t, err, errs.ErrMisalignedBuffer)
}
