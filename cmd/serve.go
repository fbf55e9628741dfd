package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"purger/internal/api"
	"purger/internal/api/handler/v1handler"
	"purger/internal/config"
	"purger/internal/events"
	"purger/internal/worker"
	"purger/pkg/logger"
	"purger/pkg/metrics"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, bus *events.Bus) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Bus: bus}}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the event API server and, in queue mode, the ban workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			purger, deliverer, drain := setupPurger(ctx, cfg, strg, false)

			bus := events.NewBus()
			events.Bind(bus, purger)

			stopWorkers := func(context.Context) {}
			if cfg.Varnish.Dispatch == config.DispatchQueue {
				riverClient, err := worker.Start(ctx, strg.Pool, deliverer, cfg.Queue.MaxWorkers)
				if err != nil {
					logger.Fatal(ctx, "could not start ban workers", zap.Error(err))
				}
				stopWorkers = func(ctx context.Context) {
					logger.Info(ctx, "stopping ban workers...")
					if err := riverClient.Stop(ctx); err != nil {
						logger.Error(ctx, "could not stop ban workers", zap.Error(err))
					}
				}
			}

			stopWebserver := setupServer(ctx, cfg, bus)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			drain(shutdownCtx)
			stopWorkers(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
