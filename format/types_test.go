package format

import (
	"testing"

	"github.com/arloliu/colview/errs"
	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		ct   CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.ct.String())
	}
}

func TestParseCompressionType(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		got, err := ParseCompressionType(ct.String())
		require.NoError(t, err)
		require.Equal(t, ct, got)
	}

	got, err := ParseCompressionType("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, got)

	_, err = ParseCompressionType("brotli")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
