package treediag

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricRebuildsTotal   = "knotwork.tree.rebuilds.total"
	metricRebuildDuration = "knotwork.tree.rebuild.duration.seconds"
	metricRebuildSize     = "knotwork.tree.rebuild.size"
	metricRotationsTotal  = "knotwork.tree.rotations.total"

	attrDirection = "direction"
)

// sizeBucketBoundaries covers single-node rebuilds up to subtrees in the
// low millions of nodes.
var sizeBucketBoundaries = []float64{1, 4, 16, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

// rebuildMetrics holds the OTel instruments for Energy-tree rebuilds and
// RBT rotations.
type rebuildMetrics struct {
	rebuildsTotal   metric.Int64Counter
	rebuildDuration metric.Float64Histogram
	rebuildSize     metric.Int64Histogram
	rotationsTotal  metric.Int64Counter
}

// newRebuildMetrics creates the rebuild/rotation instruments from mt.
func newRebuildMetrics(mt metric.Meter) (*rebuildMetrics, error) {
	rebuildsTotal, err := mt.Int64Counter(metricRebuildsTotal,
		metric.WithDescription("Total number of Energy-tree subtree rebuilds"),
		metric.WithUnit("{rebuild}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRebuildsTotal, err)
	}

	rebuildDuration, err := mt.Float64Histogram(metricRebuildDuration,
		metric.WithDescription("Wall time spent in a single rebuild"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRebuildDuration, err)
	}

	rebuildSize, err := mt.Int64Histogram(metricRebuildSize,
		metric.WithDescription("Node count of the subtree rebuilt"),
		metric.WithUnit("{node}"),
		metric.WithExplicitBucketBoundaries(sizeBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRebuildSize, err)
	}

	rotationsTotal, err := mt.Int64Counter(metricRotationsTotal,
		metric.WithDescription("Total number of red-black tree rotations"),
		metric.WithUnit("{rotation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRotationsTotal, err)
	}

	return &rebuildMetrics{
		rebuildsTotal:   rebuildsTotal,
		rebuildDuration: rebuildDuration,
		rebuildSize:     rebuildSize,
		rotationsTotal:  rotationsTotal,
	}, nil
}

func (m *rebuildMetrics) recordRebuild(ctx context.Context, size int, dur time.Duration) {
	m.rebuildsTotal.Add(ctx, 1)
	m.rebuildDuration.Record(ctx, dur.Seconds())
	m.rebuildSize.Record(ctx, int64(size))
}

func (m *rebuildMetrics) recordRotation(ctx context.Context, direction string) {
	m.rotationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrDirection, direction)))
}
