package compress

import (
	"errors"
	"slices"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecodedSize bounds the adaptive decode buffer so corrupt input cannot
// exhaust memory.
const lz4MaxDecodedSize = 128 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes a single LZ4 block into a new slice.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.DecompressTo(nil, data)
}

// DecompressTo decodes a single LZ4 block into the spare capacity of dst.
//
// The block format does not record the decoded size, so the destination starts
// at 4x the compressed size and doubles on ErrInvalidSourceShortBuffer, up to
// 128MiB.
func (c LZ4Compressor) DecompressTo(dst []byte, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst, nil
	}

	start := len(dst)
	for size := len(data) * 4; size <= lz4MaxDecodedSize; size *= 2 {
		dst = slices.Grow(dst, size)
		n, err := lz4.UncompressBlock(data, dst[start:start+size])
		if err == nil {
			return dst[:start+n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return dst[:start], err
		}
	}

	return dst[:start], lz4.ErrInvalidSourceShortBuffer
}
