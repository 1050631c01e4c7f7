package provider

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/arloliu/colview/buffer"
	"github.com/arloliu/colview/errs"
)

// MmapFile lends out a read-only memory mapping of a column file.
//
// The file is mapped with the whole of its contents; views select how many
// elements to read. Writing to the file while it is mapped violates the
// buffer immutability contract.
type MmapFile struct {
	mu      sync.RWMutex
	path    string
	data    []byte
	release func([]byte) error
	closed  bool
	logger  *zap.Logger
}

var _ Provider = (*MmapFile)(nil)

// OpenMmap maps the file at path read-only.
//
// An empty file yields an empty buffer. On platforms without mmap support the
// file is read into memory instead.
func OpenMmap(path string, opts ...Option) (*MmapFile, error) {
	if path == "" {
		return nil, errs.ErrEmptyPath
	}

	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open column file: %w", err)
	}
	// The mapping stays valid after the descriptor is closed.
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat column file: %w", err)
	}

	p := &MmapFile{path: path, logger: cfg.logger}

	size := fi.Size()
	if size == 0 {
		cfg.logger.Debug("opened empty column file", zap.String("path", path))
		return p, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("column file %s too large to map: %d bytes", path, size)
	}

	data, release, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("map column file %s: %w", path, err)
	}
	p.data = data
	p.release = release

	cfg.logger.Debug("mapped column file",
		zap.String("path", path),
		zap.Int64("size", size))

	return p, nil
}

// Path returns the mapped file path.
func (p *MmapFile) Path() string {
	return p.path
}

// Buffer borrows the mapped bytes.
func (p *MmapFile) Buffer() (buffer.Buffer, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return buffer.Buffer{}, errs.ErrProviderClosed
	}

	return buffer.Wrap(p.data), nil
}

// Close unmaps the file. Buffers borrowed earlier become invalid.
func (p *MmapFile) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	data := p.data
	p.data = nil
	if p.release == nil || data == nil {
		return nil
	}

	if err := p.release(data); err != nil {
		p.logger.Warn("failed to unmap column file",
			zap.String("path", p.path),
			zap.Error(err))

		return fmt.Errorf("unmap column file %s: %w", p.path, err)
	}

	p.logger.Debug("unmapped column file", zap.String("path", p.path))

	return nil
}
