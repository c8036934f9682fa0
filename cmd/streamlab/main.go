// Command streamlab drives StreamART2A and UbiSOM over a synthetic drifting
// Gaussian-mixture stream and logs their self-monitoring signals.
//
// Usage:
//
//	streamlab [-config run.yaml]
//
// A producer goroutine generates the stream; a single learner goroutine feeds
// both engines. At the end, a batch SOM is trained from the StreamART2A
// archive (weighted by category mass) and summarized.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvstream/config"
	"github.com/katalvlaran/lvstream/internal/rng"
	"github.com/katalvlaran/lvstream/learning"
	"github.com/katalvlaran/lvstream/som"
	"github.com/katalvlaran/lvstream/streamart"
	"github.com/katalvlaran/lvstream/ubisom"
	"github.com/katalvlaran/lvstream/vector"
)

func main() {
	path := flag.String("config", "", "YAML run configuration (defaults when empty)")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	lvl, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("streamlab failed", "err", err)
		os.Exit(1)
	}
}

// run wires the engines, consumes the stream and trains the summary map.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	dim := cfg.Stream.Dim

	engine, err := streamart.New(dim, cfg.StreamARTOptions()...)
	if err != nil {
		return fmt.Errorf("streamart: %w", err)
	}
	lattice, err := newLattice(cfg.UbiSOM.Width, cfg.UbiSOM.Height, dim, cfg)
	if err != nil {
		return err
	}
	model, err := ubisom.New(lattice, cfg.UbiSOMParams(), cfg.UbiSOMOptions()...)
	if err != nil {
		return fmt.Errorf("ubisom: %w", err)
	}

	engine.SubscribeFunc(func() {
		mt := model.Metrics()
		logger.Info("landmark",
			"step", engine.Step(),
			"archive", engine.ArchiveSize(),
			"ubisom_phase", mt.Phase.String(),
			"drift", mt.Drift,
			"activity", mt.Activity,
			"qe", mt.QuantizationError,
		)
	})

	src := newMixture(cfg.Stream, rng.Derive(rng.New(cfg.Seed), 1))
	for x := range src.produce(ctx) {
		if err := engine.Learn(x); err != nil {
			return err
		}
		if err := model.Learn(x); err != nil {
			return err
		}
		// Caller policy: converge once the ordering span is over.
		if model.Phase() == ubisom.Ordering && model.Iterations() >= int64(cfg.UbiSOM.T) {
			model.ConvergingState()
			logger.Debug("ubisom converging", "iteration", model.Iterations(), "drift_ref", model.DriftReference())
		}
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("stream interrupted", "step", engine.Step())
	}

	return summarize(cfg, engine, logger)
}

// summarize trains a batch SOM from the archived micro-categories.
func summarize(cfg config.Config, engine *streamart.Engine, logger *slog.Logger) error {
	archived := engine.Codebook()
	if len(archived) == 0 {
		logger.Warn("archive is empty; no landmark window completed", "step", engine.Step())
		return nil
	}
	samples := learning.FromCategories(archived)

	lattice, err := newLattice(cfg.Batch.Width, cfg.Batch.Height, cfg.Stream.Dim, cfg)
	if err != nil {
		return err
	}
	lattice.Randomize(0, 1, rng.Derive(rng.New(cfg.Seed), 2))
	trainer, err := learning.NewBatch(lattice, cfg.BatchParams())
	if err != nil {
		return err
	}
	if err := trainer.TrainWeighted(samples); err != nil {
		return err
	}

	protos := make([]vector.Vector, len(archived))
	var mass int64
	for i, c := range archived {
		protos[i] = c.Prototype
		mass += c.Weight
	}
	qe, err := lattice.QuantizationError(protos)
	if err != nil {
		return err
	}
	logger.Info("summary",
		"steps", engine.Step(),
		"archived_categories", len(archived),
		"archived_mass", mass,
		"batch_epochs", trainer.Epochs(),
		"batch_qe", qe,
	)

	return nil
}

func newLattice(w, h, dim int, cfg config.Config) (*som.Map, error) {
	opts, err := cfg.LatticeOptions()
	if err != nil {
		return nil, err
	}
	m, err := som.New(w, h, dim, opts...)
	if errors.Is(err, som.ErrInvalidSize) {
		return nil, fmt.Errorf("lattice %dx%d: %w", w, h, err)
	}

	return m, err
}
