package compress

import (
	"fmt"
	"slices"

	"github.com/klauspost/compress/s2"
)

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as an S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressTo decodes an S2 block directly into the spare capacity of dst.
func (c S2Compressor) DecompressTo(dst []byte, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return dst, fmt.Errorf("s2 decompression failed: %w", err)
	}

	start := len(dst)
	dst = slices.Grow(dst, n)[:start+n]
	if _, err := s2.Decode(dst[start:], data); err != nil {
		return dst[:start], fmt.Errorf("s2 decompression failed: %w", err)
	}

	return dst, nil
}
