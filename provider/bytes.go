package provider

import (
	"sync"

	"github.com/arloliu/colview/buffer"
	"github.com/arloliu/colview/errs"
)

// Bytes lends out a caller-supplied heap slice.
//
// It does not copy the slice; Close only stops further borrows, the garbage
// collector reclaims the memory.
type Bytes struct {
	mu     sync.RWMutex
	data   []byte
	closed bool
}

var _ Provider = (*Bytes)(nil)

// NewBytes creates a provider over data.
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

// Buffer borrows the slice.
func (p *Bytes) Buffer() (buffer.Buffer, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return buffer.Buffer{}, errs.ErrProviderClosed
	}

	return buffer.Wrap(p.data), nil
}

// Close drops the reference to the slice.
func (p *Bytes) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.data = nil

	return nil
}
