package tsp

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeAllowance is the wall-clock budget used when none is given.
const DefaultTimeAllowance = 60 * time.Second

// Options configures a solver invocation.
//
// TimeAllowance     – total wall-clock budget of the call (baseline seeding included).
// BaselineAllowance – cap on the time the baseline may spend seeding the BSSF;
//
//	the effective value is min(BaselineAllowance, TimeAllowance).
//
// Seed              – RNG seed for the baseline; 0 selects the fixed default seed.
// Logger            – structured logger; nil discards output.
// OnImprove         – optional hook called with every new BSSF (seed included).
type Options struct {
	TimeAllowance     time.Duration
	BaselineAllowance time.Duration
	Seed              int64
	Logger            logrus.FieldLogger
	OnImprove         func(Solution)
}

// Option represents a functional option for configuring the solvers.
type Option func(*Options)

// WithTimeAllowance sets the total wall-clock budget. Zero is legal: the
// baseline still draws once and the search loop never runs.
func WithTimeAllowance(d time.Duration) Option {
	return func(o *Options) {
		o.TimeAllowance = d
	}
}

// WithBaselineAllowance caps the time spent seeding the BSSF.
func WithBaselineAllowance(d time.Duration) Option {
	return func(o *Options) {
		o.BaselineAllowance = d
	}
}

// WithSeed fixes the baseline RNG seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger routes solver logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// OnImprove registers a hook invoked synchronously on every BSSF replacement.
// The Solution passed is a copy; the hook may retain it.
func OnImprove(fn func(Solution)) Option {
	return func(o *Options) {
		o.OnImprove = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - TimeAllowance:     60s.
//   - BaselineAllowance: 60s.
//   - Seed:              0 (deterministic default stream).
//   - Logger:            discarding logger.
func DefaultOptions() Options {
	return Options{
		TimeAllowance:     DefaultTimeAllowance,
		BaselineAllowance: DefaultTimeAllowance,
		Seed:              0,
		Logger:            discardLogger(),
	}
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.TimeAllowance < 0 || cfg.BaselineAllowance < 0 {
		return Options{}, ErrNegativeAllowance
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}

	return cfg, nil
}

// discardLogger returns a logger that drops every entry.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
