package logger_test

import (
	"context"
	"purger/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetPrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewNop()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFieldsAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("event", "varnish_flush_all"), zap.Int64("post_id", 7))
	logger.Info(ctx, "handled")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "handled", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "varnish_flush_all", fields["event"])
	require.Equal(t, int64(7), fields["post_id"])
}

func TestReplaceAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Setup(logger.DevelopmentEnvironment) })

	ctx := context.Background()
	require.False(t, logger.IsDebug(ctx))

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Equal(t, 3, logs.Len())
	require.Equal(t, 1, logs.FilterMessage("warn").Len())
}
