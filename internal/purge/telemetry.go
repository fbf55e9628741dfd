package purge

import (
	"context"
	"fmt"
	"purger/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "purger/internal/purge"

const (
	skipUnresolved = "unresolved"
	skipDuplicate  = "duplicate"
	skipNoHosts    = "no_hosts"
	skipStorage    = "storage_error"
)

type builderTelemetry struct {
	requests metric.Int64Counter
	skipped  metric.Int64Counter
}

func newBuilderTelemetry() (builderTelemetry, error) {
	meter := otel.Meter(instrumentationName)

	requests, err := meter.Int64Counter("purge.requests",
		metric.WithDescription("Ban expressions handed to the sender, by intent."))
	if err != nil {
		return builderTelemetry{}, fmt.Errorf("could not create requests counter: %w", err)
	}
	skipped, err := meter.Int64Counter("purge.skipped",
		metric.WithDescription("Purges or ban expressions skipped, by intent and reason."))
	if err != nil {
		return builderTelemetry{}, fmt.Errorf("could not create skipped counter: %w", err)
	}

	return builderTelemetry{requests: requests, skipped: skipped}, nil
}

func (t builderTelemetry) requested(ctx context.Context, intent Intent) {
	t.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("intent", string(intent))))
}

func (t builderTelemetry) skip(ctx context.Context, intent Intent, reason string) {
	t.skipped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("intent", string(intent)),
		attribute.String("reason", reason),
	))
}

type deliveryTelemetry struct {
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

func newDeliveryTelemetry() (deliveryTelemetry, error) {
	meter := otel.Meter(instrumentationName)

	failures, err := meter.Int64Counter("purge.send.failures",
		metric.WithDescription("Ban requests that failed or timed out."))
	if err != nil {
		return deliveryTelemetry{}, fmt.Errorf("could not create failures counter: %w", err)
	}
	duration, err := meter.Float64Histogram("purge.send.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of ban requests."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return deliveryTelemetry{}, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return deliveryTelemetry{failures: failures, duration: duration}, nil
}
