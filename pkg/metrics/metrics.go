// Package metrics wires the OpenTelemetry metric SDK to the Prometheus
// registry scraped on the HTTP metrics path.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds. Ban
// requests time out well below a second, so the low end is dense.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .3, .5, 1, 2.5, 5} //nolint: gochecknoglobals

// Setup creates a meter provider exporting to registerer and installs it as
// the global OpenTelemetry meter provider. Instruments created through
// otel.Meter before Setup are bound to it as well.
func Setup(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}
