package treediag

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "knotwork.tree"

// PrometheusProvider pairs a [metric.Meter] suitable for [New] with an
// [http.Handler] that serves it on a Prometheus-format scrape endpoint.
// Each call creates an independent registry, so callers that want a
// single process-wide /metrics endpoint should call this once and reuse
// the result.
type PrometheusProvider struct {
	Meter   metric.Meter
	Handler http.Handler
}

// NewPrometheusProvider wires an OTel MeterProvider to a fresh Prometheus
// registry and returns both the Meter to pass to [New] and the scrape
// Handler to mount.
func NewPrometheusProvider() (*PrometheusProvider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("treediag: create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	return &PrometheusProvider{
		Meter:   mp.Meter(meterName),
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, nil
}
