package compress

// NoOpCompressor passes payloads through unchanged.
//
// It backs format.CompressionNone, so uncompressed columns go through the same
// provider path as compressed ones.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result aliases the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result aliases the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressTo appends a copy of data to dst.
func (c NoOpCompressor) DecompressTo(dst []byte, data []byte) ([]byte, error) {
	return append(dst, data...), nil
}
