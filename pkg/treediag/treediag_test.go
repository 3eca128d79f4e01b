package treediag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "off", cfg.Level)
	assert.False(t, cfg.MetricsEnabled)
	assert.InDelta(t, 0.5, cfg.Alpha, 1e-9)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	cfg := Config{Level: "verbose", Alpha: 0.5}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidLevel)
}

func TestLoadRejectsInvalidAlpha(t *testing.T) {
	t.Parallel()

	cfg := Config{Level: "off", Alpha: 1.5}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAlpha)
}

func TestNilDiagnosticsIsSafe(t *testing.T) {
	t.Parallel()

	var d *Diagnostics

	assert.True(t, d.RebuildStarted().IsZero())

	d.RebuildFinished(10, time.Now())
	d.Rotation("left")
}

func TestNewWithoutMetrics(t *testing.T) {
	t.Parallel()

	d, err := New(Config{Level: "debug", Alpha: 0.5}, nil)
	require.NoError(t, err)
	require.NotNil(t, d)

	started := d.RebuildStarted()
	assert.False(t, started.IsZero())

	d.RebuildFinished(5, started)
	d.Rotation("right")
}
