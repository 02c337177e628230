package logger_test

import (
	"context"
	"testing"
	"tracker/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, err := cfg.Build()
	require.NoError(t, err)

	ctx := logger.WithLogger(context.Background(), infoLogger)
	require.False(t, logger.IsDebug(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("provider", "usps"), zap.String("trackingNumber", "9400111899223197428701"))
	logger.Info(ctx, "attempt started")
	logger.Warn(ctx, "attempt failed", zap.Int("attempt", 2))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "attempt started", entries[0].Message)
	require.Equal(t, "usps", entries[0].ContextMap()["provider"])
	require.Equal(t, int64(2), entries[1].ContextMap()["attempt"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestGet_FallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.NotNil(t, logger.Get(context.Background()))

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(context.Background(), custom)))
}

func TestLevelHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")
	require.Panics(t, func() { logger.Fatal(ctx, "f") })

	levels := make([]zapcore.Level, 0, logs.Len())
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{
		zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.FatalLevel,
	}, levels)
}
