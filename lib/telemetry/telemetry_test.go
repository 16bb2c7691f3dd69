package telemetry

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSlog(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	InitSlog(false)
	require.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))

	InitSlog(true)
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestShutdownWithoutProviders(t *testing.T) {
	require.NoError(t, Telemetry{}.Shutdown(context.Background()))
}

func TestTracerIsUsableBeforeSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "span")
	defer span.End()
	require.NotNil(t, span)
}

func TestSetupForTesting(t *testing.T) {
	tel, err := SetupForTesting("telemetry-test")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, tel.Shutdown(context.Background())) })

	ctx := context.Background()
	_, span := Tracer("telemetry-test").Start(ctx, "recorded")
	span.End()
	require.Contains(t, tel.EndedSpanNames(), "recorded")

	counter, err := Meter("telemetry-test").Int64Counter("test.count")
	require.NoError(t, err)
	counter.Add(ctx, 2)
	counter.Add(ctx, 3)

	value, err := tel.CounterValue(ctx, "test.count")
	require.NoError(t, err)
	require.Equal(t, int64(5), value)
}
