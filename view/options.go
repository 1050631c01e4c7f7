package view

import "github.com/arloliu/colview/internal/options"

type config struct {
	alignmentCheck bool
	mutationCheck  bool
}

func defaultConfig() *config {
	return &config{}
}

// Option configures New.
type Option = options.Option[*config]

func applyOptions(cfg *config, opts ...Option) error {
	return options.Apply(cfg, opts...)
}

// WithAlignmentCheck makes New reject dense buffers whose base address is not
// a multiple of the native element size.
func WithAlignmentCheck() Option {
	return options.NoError(func(c *config) {
		c.alignmentCheck = true
	})
}

// WithMutationCheck records an xxHash64 fingerprint of the element bytes in New
// so that Verify can detect an owner modifying the buffer while it is borrowed.
//
// Hashing costs one pass over the buffer at construction and on every Verify.
func WithMutationCheck() Option {
	return options.NoError(func(c *config) {
		c.mutationCheck = true
	})
}
