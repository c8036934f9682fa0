package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvstream/config"
	"github.com/katalvlaran/lvstream/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Stream.Steps = 600
	cfg.Stream.DriftAt = 300
	cfg.StreamART.LandmarkWindow = 100
	cfg.StreamART.MaxActive = 10
	cfg.UbiSOM.Width, cfg.UbiSOM.Height = 5, 5
	cfg.UbiSOM.T = 100
	cfg.Batch.Width, cfg.Batch.Height = 4, 4
	cfg.Batch.OrderEpochs, cfg.Batch.ConvergeEpochs = 2, 3
	return cfg
}

// TestRun_LogsLandmarksAndSummary runs a short stream end to end.
func TestRun_LogsLandmarksAndSummary(t *testing.T) {
	cfg := smallConfig()
	require.NoError(t, cfg.Validate())
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	require.NoError(t, run(context.Background(), cfg, logger))

	out := buf.String()
	assert.Equal(t, 6, bytes.Count(buf.Bytes(), []byte("msg=landmark")))
	assert.Contains(t, out, "msg=\"ubisom converging\"")
	assert.Contains(t, out, "msg=summary")
	assert.Contains(t, out, "archived_mass=600")
	assert.Contains(t, out, "batch_epochs=5")
}

// TestRun_Cancelled stops early and still summarizes whatever was archived.
func TestRun_Cancelled(t *testing.T) {
	cfg := smallConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	require.NoError(t, run(ctx, cfg, logger))
	assert.Contains(t, buf.String(), "stream interrupted")
}

// TestMixture_SamplesInUnitCube checks clamping and the channel contract.
func TestMixture_SamplesInUnitCube(t *testing.T) {
	cfg := smallConfig().Stream
	cfg.Spread = 0.5
	m := newMixture(cfg, rng.New(3))

	n := 0
	for x := range m.produce(context.Background()) {
		require.Len(t, x, cfg.Dim)
		for _, c := range x {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
		n++
	}
	assert.Equal(t, cfg.Steps, n)
}
