// Package compress provides the codecs used to store column buffers compressed at rest.
//
// A compressed column is decompressed once into memory owned by a buffer
// provider, and views then read the decompressed bytes without copying. The
// codecs here never interpret the payload: dense and bit-packed buffers are
// compressed as opaque bytes.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload is stored as-is.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Uses
//     klauspost/compress by default; build with cgo and the gozstd tag to use
//     valyala/gozstd instead. Both produce standard Zstandard frames.
//   - S2 (format.CompressionS2): klauspost/compress/s2, fast with a good ratio.
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 block format, fastest decode.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress(column)
//	raw, err := codec.DecompressTo(dst[:0], packed)
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by pooled encoders and
// decoders and are safe for concurrent use.
package compress
