package main

import (
	"context"
	"net/http"
	"purger/internal/config"
	"purger/internal/purge"
	"purger/internal/worker"
	"purger/pkg/logger"
	"purger/pkg/storage/postgres"
	"purger/pkg/varnish/httpban"

	"go.uber.org/zap"
)

// setupPurger builds the ban client, the configured sender and the purge
// builder. The returned function drains in-flight deliveries. With oneShot set
// inline bans are delivered before the purge call returns.
func setupPurger(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	oneShot bool) (*purge.Builder, *purge.Deliverer, func(ctx context.Context)) {
	client, err := httpban.New(&http.Client{}, cfg.Varnish.HomeURL, cfg.Varnish.Secret)
	if err != nil {
		logger.Fatal(ctx, "could not create ban client", zap.Error(err))
	}

	deliverer, err := purge.NewDeliverer(client, purge.DeliveryOptions{Timeout: cfg.Varnish.Timeout})
	if err != nil {
		logger.Fatal(ctx, "could not create ban deliverer", zap.Error(err))
	}

	var (
		sender purge.Sender
		drain  = func(context.Context) {}
	)
	switch {
	case cfg.Varnish.Dispatch == config.DispatchQueue:
		sender = worker.NewQueueSender(strg)
	case oneShot:
		sender = purge.NewSyncSender(deliverer)
	default:
		async := purge.NewAsyncSender(deliverer)
		sender = async
		drain = func(ctx context.Context) {
			if err := async.Close(ctx); err != nil {
				logger.Warn(ctx, "could not drain in-flight bans", zap.Error(err))
			}
		}
	}

	builder, err := purge.New(purge.NewOptions(cfg), strg, strg, sender)
	if err != nil {
		logger.Fatal(ctx, "could not create purger", zap.Error(err))
	}

	return builder, deliverer, drain
}
