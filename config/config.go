// Package config loads the YAML run configuration consumed by cmd/streamlab
// and converts it into engine options.
//
// All parameters are construction-time only: once an engine is built from a
// Config, changing the Config has no effect on it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvstream/learning"
	"github.com/katalvlaran/lvstream/som"
	"github.com/katalvlaran/lvstream/streamart"
	"github.com/katalvlaran/lvstream/ubisom"
	"github.com/katalvlaran/lvstream/vector"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of a run configuration file.
type Config struct {
	Seed      int64     `yaml:"seed"`
	LogLevel  string    `yaml:"log_level"`
	Stream    Stream    `yaml:"stream"`
	StreamART StreamART `yaml:"streamart"`
	UbiSOM    UbiSOM    `yaml:"ubisom"`
	Batch     Batch     `yaml:"batch"`
}

// Stream describes the synthetic Gaussian-mixture source.
type Stream struct {
	Dim      int     `yaml:"dim"`
	Steps    int     `yaml:"steps"`
	Clusters int     `yaml:"clusters"`
	Spread   float64 `yaml:"spread"`   // per-component standard deviation
	DriftAt  int     `yaml:"drift_at"` // step at which cluster centers jump; 0 disables
	Buffer   int     `yaml:"buffer"`   // producer→learner channel capacity
}

// StreamART configures the StreamART2A engine.
type StreamART struct {
	InputMin        float64 `yaml:"input_min"`
	InputMax        float64 `yaml:"input_max"`
	LearningRate    float64 `yaml:"learning_rate"`
	LandmarkWindow  int     `yaml:"landmark_window"`
	MaxActive       int     `yaml:"max_active"`
	ArchiveCapacity int     `yaml:"archive_capacity"`
}

// UbiSOM configures the lattice and the UbiSOM schedule.
type UbiSOM struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Topology       string  `yaml:"topology"`
	Metric         string  `yaml:"metric"`
	Alpha0         float64 `yaml:"alpha0"`
	AlphaF         float64 `yaml:"alpha_f"`
	Sigma0         float64 `yaml:"sigma0"`
	SigmaF         float64 `yaml:"sigma_f"`
	Beta           float64 `yaml:"beta"`
	T              int     `yaml:"t"`
	CascadeFilters bool    `yaml:"cascade_filters"`
}

// Batch configures the offline SOM trained from the StreamART2A archive.
type Batch struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	OrderEpochs    int     `yaml:"order_epochs"`
	ConvergeEpochs int     `yaml:"converge_epochs"`
	Sigma0         float64 `yaml:"sigma0"`
	SigmaF         float64 `yaml:"sigma_f"`
}

// Default returns a configuration that passes Validate.
func Default() Config {
	up := ubisom.DefaultParams()
	bp := learning.DefaultBatchParams()

	return Config{
		Seed:     1,
		LogLevel: "info",
		Stream: Stream{
			Dim:      2,
			Steps:    20000,
			Clusters: 4,
			Spread:   0.03,
			DriftAt:  10000,
			Buffer:   256,
		},
		StreamART: StreamART{
			InputMin:        streamart.DefaultInputMin,
			InputMax:        streamart.DefaultInputMax,
			LearningRate:    streamart.DefaultLearningRate,
			LandmarkWindow:  streamart.DefaultLandmarkWindow,
			MaxActive:       streamart.DefaultMaxActive,
			ArchiveCapacity: streamart.DefaultArchiveCapacity,
		},
		UbiSOM: UbiSOM{
			Width:    20,
			Height:   40,
			Topology: som.Hexagonal.String(),
			Metric:   vector.Euclidean.String(),
			Alpha0:   up.Alpha0,
			AlphaF:   up.AlphaF,
			Sigma0:   up.Sigma0,
			SigmaF:   up.SigmaF,
			Beta:     up.Beta,
			T:        up.T,
		},
		Batch: Batch{
			Width:          10,
			Height:         10,
			OrderEpochs:    bp.OrderEpochs,
			ConvergeEpochs: bp.ConvergeEpochs,
			Sigma0:         bp.Sigma0,
			SigmaF:         bp.SigmaF,
		},
	}
}

// Load reads and validates a YAML file. Missing keys keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}

	if _, err := c.SlogLevel(); err != nil {
		return invalid("%v", err)
	}

	s := c.Stream
	if s.Dim <= 0 || s.Steps <= 0 || s.Clusters <= 0 || s.Buffer < 0 {
		return invalid("stream: dim, steps and clusters must be positive, buffer non-negative")
	}
	if !(s.Spread >= 0) || s.DriftAt < 0 {
		return invalid("stream: spread and drift_at must be non-negative")
	}

	a := c.StreamART
	if !(a.InputMax > a.InputMin) {
		return invalid("streamart: input range [%g, %g] is empty", a.InputMin, a.InputMax)
	}
	if !(a.LearningRate >= 0 && a.LearningRate <= 1) {
		return invalid("streamart: learning_rate must be in [0,1], got %g", a.LearningRate)
	}
	if a.LandmarkWindow <= 0 || a.MaxActive <= 0 || a.ArchiveCapacity <= 0 {
		return invalid("streamart: landmark_window, max_active and archive_capacity must be positive")
	}

	u := c.UbiSOM
	if u.Width <= 0 || u.Height <= 0 {
		return invalid("ubisom: width and height must be positive")
	}
	if _, err := c.LatticeOptions(); err != nil {
		return invalid("ubisom: %v", err)
	}
	if err := c.UbiSOMParams().Validate(); err != nil {
		return invalid("%v", err)
	}

	b := c.Batch
	if b.Width <= 0 || b.Height <= 0 {
		return invalid("batch: width and height must be positive")
	}
	if err := c.BatchParams().Validate(); err != nil {
		return invalid("%v", err)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level. An empty string means info.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}

	return lvl, nil
}

// StreamARTOptions converts the streamart section. Call Validate first:
// streamart options panic on nonsensical values.
func (c Config) StreamARTOptions() []streamart.Option {
	a := c.StreamART

	return []streamart.Option{
		streamart.WithInputRange(a.InputMin, a.InputMax),
		streamart.WithLearningRate(a.LearningRate),
		streamart.WithLandmarkWindow(a.LandmarkWindow),
		streamart.WithMaxActive(a.MaxActive),
		streamart.WithArchiveCapacity(a.ArchiveCapacity),
		streamart.WithSeed(c.Seed),
	}
}

// LatticeOptions converts the ubisom topology and metric names.
func (c Config) LatticeOptions() ([]som.Option, error) {
	tp, err := som.ParseTopology(c.UbiSOM.Topology)
	if err != nil {
		return nil, err
	}
	metric, err := vector.ParseMetric(c.UbiSOM.Metric)
	if err != nil {
		return nil, err
	}

	return []som.Option{som.WithTopology(tp), som.WithMetric(metric)}, nil
}

// UbiSOMParams converts the ubisom schedule.
func (c Config) UbiSOMParams() ubisom.Params {
	u := c.UbiSOM

	return ubisom.Params{
		Alpha0: u.Alpha0,
		AlphaF: u.AlphaF,
		Sigma0: u.Sigma0,
		SigmaF: u.SigmaF,
		Beta:   u.Beta,
		T:      u.T,
	}
}

// UbiSOMOptions converts seeding and filter choice.
func (c Config) UbiSOMOptions() []ubisom.Option {
	opts := []ubisom.Option{ubisom.WithSeed(c.Seed)}
	if c.UbiSOM.CascadeFilters {
		opts = append(opts, ubisom.WithCascadeFilters())
	}

	return opts
}

// BatchParams converts the batch schedule.
func (c Config) BatchParams() learning.BatchParams {
	b := c.Batch

	return learning.BatchParams{
		OrderEpochs:    b.OrderEpochs,
		ConvergeEpochs: b.ConvergeEpochs,
		Sigma0:         b.Sigma0,
		SigmaF:         b.SigmaF,
	}
}
