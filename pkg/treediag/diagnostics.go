package treediag

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/metric"
)

// Diagnostics is the handle a tree package holds onto for optional
// logging and metrics. Its methods are nil-receiver safe, so a tree's
// diagnostics field can be left as the zero value (*Diagnostics)(nil)
// when a caller never opts in -- the common case, and the hot path the
// zero-cost default is meant to protect.
type Diagnostics struct {
	log     *slog.Logger
	enabled bool
	metrics *rebuildMetrics
}

// New builds a Diagnostics from cfg. When mt is non-nil and
// cfg.MetricsEnabled, metric instruments are created against it; pass a
// nil Meter to skip metrics regardless of cfg.
func New(cfg Config, mt metric.Meter) (*Diagnostics, error) {
	d := &Diagnostics{
		log:     newLogger(cfg),
		enabled: cfg.Level != "off",
	}

	if cfg.MetricsEnabled && mt != nil {
		rm, err := newRebuildMetrics(mt)
		if err != nil {
			return nil, err
		}

		d.metrics = rm
	}

	return d, nil
}

// RebuildStarted returns the current time for use with RebuildFinished,
// or the zero time.Time if d is nil -- avoiding a time.Now() call on the
// hot path when diagnostics were never configured.
func (d *Diagnostics) RebuildStarted() time.Time {
	if d == nil {
		return time.Time{}
	}

	return time.Now()
}

// RebuildFinished logs and records metrics for a completed Energy-tree
// subtree rebuild of size nodes that began at started. There is no
// request-scoped context in this synchronous, in-process library (see
// the concurrency model's "no cancellation" stance), so metric recording
// uses context.Background() internally.
func (d *Diagnostics) RebuildFinished(size int, started time.Time) {
	if d == nil {
		return
	}

	dur := time.Since(started)

	if d.enabled {
		d.log.Debug("subtree rebuilt",
			slog.String("size", humanize.Comma(int64(size))),
			slog.Duration("took", dur))
	}

	if d.metrics != nil {
		d.metrics.recordRebuild(context.Background(), size, dur)
	}
}

// Rotation logs and records metrics for a single rotation in direction
// "left" or "right".
func (d *Diagnostics) Rotation(direction string) {
	if d == nil {
		return
	}

	if d.enabled {
		d.log.Debug("rotated", slog.String("direction", direction))
	}

	if d.metrics != nil {
		d.metrics.recordRotation(context.Background(), direction)
	}
}
