package provider

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/arloliu/colview/buffer"
	"github.com/arloliu/colview/compress"
	"github.com/arloliu/colview/errs"
	"github.com/arloliu/colview/format"
	"github.com/arloliu/colview/internal/pool"
)

// Decompressed lends out a column decompressed into a pooled buffer.
//
// Close returns the buffer to the pool, where it will be reused by the next
// decompressed column, so borrowed buffers must not outlive the provider.
type Decompressed struct {
	mu          sync.RWMutex
	bb          *pool.ByteBuffer
	compression format.CompressionType
	closed      bool
	logger      *zap.Logger
}

var _ Provider = (*Decompressed)(nil)

// NewDecompressed decompresses payload with the codec for compression.
//
// The payload itself is not retained.
func NewDecompressed(payload []byte, compression format.CompressionType, opts ...Option) (*Decompressed, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	bb := pool.GetColumnBuffer()
	err = bb.Fill(func(dst []byte) ([]byte, error) {
		return codec.DecompressTo(dst, payload)
	})
	if err != nil {
		pool.PutColumnBuffer(bb)
		cfg.logger.Debug("column decompression failed",
			zap.Stringer("compression", compression),
			zap.Int("payload_size", len(payload)),
			zap.Error(err))

		return nil, fmt.Errorf("decompress %s column: %w", compression, err)
	}

	cfg.logger.Debug("decompressed column",
		zap.Stringer("compression", compression),
		zap.Int("payload_size", len(payload)),
		zap.Int("size", bb.Len()))

	return &Decompressed{bb: bb, compression: compression, logger: cfg.logger}, nil
}

// Compression returns the codec the payload was compressed with.
func (p *Decompressed) Compression() format.CompressionType {
	return p.compression
}

// Buffer borrows the decompressed bytes.
func (p *Decompressed) Buffer() (buffer.Buffer, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return buffer.Buffer{}, errs.ErrProviderClosed
	}

	return buffer.Wrap(p.bb.Bytes()), nil
}

// Close returns the decompressed bytes to the pool.
func (p *Decompressed) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	size := p.bb.Len()
	pool.PutColumnBuffer(p.bb)
	p.bb = nil

	p.logger.Debug("released decompressed column",
		zap.Stringer("compression", p.compression),
		zap.Int("size", size))

	return nil
}
