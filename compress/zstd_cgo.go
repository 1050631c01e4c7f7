//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses data into a single Zstandard frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes Zstandard frames into a new slice.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.DecompressTo(nil, data)
}

// DecompressTo appends the decoded Zstandard frames to dst.
func (c ZstdCompressor) DecompressTo(dst []byte, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst, nil
	}

	out, err := gozstd.Decompress(dst, data)
	if err != nil {
		return dst, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
