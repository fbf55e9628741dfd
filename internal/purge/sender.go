package purge

import (
	"context"
	"purger/pkg/logger"
	"purger/pkg/serrors"
	"purger/pkg/varnish"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// DefaultSendTimeout bounds a single ban request.
const DefaultSendTimeout = 300 * time.Millisecond

// DeliveryOptions configure a Deliverer.
type DeliveryOptions struct {
	// Timeout bounds one ban request. Zero means DefaultSendTimeout.
	Timeout time.Duration
	// OnError, when set, observes every failed delivery.
	OnError func(ctx context.Context, expr string, err error)
}

// Deliverer performs one bounded ban request and records its outcome.
type Deliverer struct {
	client    varnish.Client
	opts      DeliveryOptions
	telemetry deliveryTelemetry
}

// NewDeliverer constructs a Deliverer on top of client.
func NewDeliverer(client varnish.Client, opts DeliveryOptions) (*Deliverer, error) {
	if client == nil {
		return nil, serrors.With(serrors.ErrInvalidConfig, "varnish client is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultSendTimeout
	}

	telemetry, err := newDeliveryTelemetry()
	if err != nil {
		return nil, err
	}

	return &Deliverer{client: client, opts: opts, telemetry: telemetry}, nil
}

// Timeout returns the per-request deadline.
func (d *Deliverer) Timeout() time.Duration {
	return d.opts.Timeout
}

// Deliver submits expr and returns the outcome. Failures are logged and
// counted before being returned.
func (d *Deliverer) Deliver(ctx context.Context, expr string) error {
	ctx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()

	start := time.Now()
	err := d.client.Ban(ctx, expr)
	d.telemetry.duration.Record(ctx, time.Since(start).Seconds())
	if err == nil {
		return nil
	}

	d.telemetry.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", serrors.KindOf(err).Error())))
	logger.Warn(ctx, "ban request failed", zap.String("expr", expr), zap.Error(err))
	if d.opts.OnError != nil {
		d.opts.OnError(ctx, expr, err)
	}

	return err
}

// AsyncSender delivers every expression on its own goroutine so that Send
// returns immediately. Results are never reported back to the caller.
type AsyncSender struct {
	deliverer *Deliverer
	wg        sync.WaitGroup
}

var _ Sender = (*AsyncSender)(nil)

// NewAsyncSender constructs an AsyncSender.
func NewAsyncSender(deliverer *Deliverer) *AsyncSender {
	return &AsyncSender{deliverer: deliverer}
}

// Send starts delivering expr in the background. Cancelling ctx after Send
// returns does not abort the request; only the delivery timeout does.
func (s *AsyncSender) Send(ctx context.Context, expr string) {
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_ = s.deliverer.Deliver(ctx, expr)
	}()
}

// Close waits for in-flight deliveries until ctx is done.
func (s *AsyncSender) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "in-flight bans did not finish")
	}
}

// SyncSender delivers inline and drops the outcome. It is meant for one-shot
// commands and tests.
type SyncSender struct {
	deliverer *Deliverer
}

var _ Sender = (*SyncSender)(nil)

// NewSyncSender constructs a SyncSender.
func NewSyncSender(deliverer *Deliverer) *SyncSender {
	return &SyncSender{deliverer: deliverer}
}

// Send delivers expr before returning.
func (s *SyncSender) Send(ctx context.Context, expr string) {
	_ = s.deliverer.Deliver(ctx, expr)
}
