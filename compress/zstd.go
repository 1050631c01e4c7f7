package compress

// ZstdCompressor provides Zstandard compression.
//
// It suits columns kept in cold storage or shipped over the network, where the
// ratio matters more than compression speed. Decompression is fast enough to
// run once per column load.
//
// The implementation is selected at build time: klauspost/compress by default,
// or the cgo valyala/gozstd binding when built with the gozstd tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
