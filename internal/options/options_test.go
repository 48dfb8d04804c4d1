package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	label string
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 42 }),
		New(func(c *testConfig) error {
			c.label = "set"
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.value)
	require.Equal(t, "set", cfg.label)
}

func TestApplyStopsOnError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.value = 1 }),
	)
	require.ErrorIs(t, err, boom)
	require.Zero(t, cfg.value, "options after a failing one must not apply")
}

func TestApplyNoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
