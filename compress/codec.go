package compress

import (
	"fmt"

	"github.com/arloliu/colview/errs"
	"github.com/arloliu/colview/format"
)

// Compressor compresses column payloads.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The input slice is not modified. The returned slice is owned by the caller,
	// except for the no-op codec which returns data itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores column payloads.
type Decompressor interface {
	// Decompress returns the original bytes of a compressed payload in a newly
	// allocated slice (or data itself for the no-op codec).
	Decompress(data []byte) ([]byte, error)

	// DecompressTo appends the original bytes of data to dst and returns the
	// extended slice. It lets callers decompress into pooled memory.
	DecompressTo(dst []byte, data []byte) ([]byte, error)
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a new Codec for compressionType.
//
// The target describes what the codec is for and only appears in errors.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s for %s", errs.ErrInvalidCompression, compressionType, target)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
