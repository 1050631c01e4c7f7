// Package provider supplies owned memory for colview buffers.
//
// Views never own memory: they borrow a buffer.Buffer from whoever does. The
// providers in this package are such owners. Each one holds a column's bytes
// (in the heap, in a read-only file mapping, or in a pooled buffer after
// decompression) and lends them out until Close.
//
// Lifetime rule: a Buffer obtained from a provider, and every view built on
// it, must not be used after the provider is closed. Closing releases the
// memory (unmapping the file or returning the buffer to its pool), so a late
// read is a use-after-free.
//
//	p, err := provider.OpenMmap("prices.f64")
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	buf, err := p.Buffer()
//	if err != nil {
//	    return err
//	}
//	prices, err := view.New[float64, dtype.Float64](buf, buf.Len()/8)
package provider

import (
	"go.uber.org/zap"

	"github.com/arloliu/colview/buffer"
	"github.com/arloliu/colview/internal/options"
)

// Provider owns the memory behind a buffer.Buffer.
//
// Buffer may be called concurrently. Close is idempotent and must not race
// with reads through previously returned buffers.
type Provider interface {
	// Buffer borrows the owned bytes. It returns ErrProviderClosed after Close.
	Buffer() (buffer.Buffer, error)

	// Close releases the owned memory.
	Close() error
}

type config struct {
	logger *zap.Logger
}

func defaultConfig() *config {
	return &config{logger: zap.NewNop()}
}

// Option configures a provider.
type Option = options.Option[*config]

func applyOptions(opts ...Option) (*config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLogger sets the logger used for open, close and decompression events.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	})
}
