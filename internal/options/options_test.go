package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("width cannot be negative")

type testConfig struct {
	width   int
	label   string
	checked bool
}

func withWidth(w int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if w < 0 {
			return errNegative
		}
		c.width = w

		return nil
	})
}

func withLabel(label string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.label = label
	})
}

func withChecked() Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.checked = true
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWidth(4), withLabel("first"), withLabel("second"), withChecked())

		require.NoError(t, err)
		require.Equal(t, 4, cfg.width)
		require.Equal(t, "second", cfg.label)
		require.True(t, cfg.checked)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWidth(8), withWidth(-1), withLabel("unreached"))

		require.ErrorIs(t, err, errNegative)
		require.Contains(t, err.Error(), "option 1")
		require.Equal(t, 8, cfg.width)
		require.Empty(t, cfg.label)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, nil, withChecked())

		require.NoError(t, err)
		require.True(t, cfg.checked)
	})

	t.Run("no options leaves target untouched", func(t *testing.T) {
		cfg := &testConfig{width: 2}
		require.NoError(t, Apply(cfg))
		require.Equal(t, &testConfig{width: 2}, cfg)
	})
}

func TestOption_NonStructTarget(t *testing.T) {
	var n int
	require.NoError(t, Apply(&n, Option[*int](NoError(func(p *int) { *p = 42 }))))
	require.Equal(t, 42, n)
}
