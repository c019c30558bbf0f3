package component

import (
	"log/slog"

	"github.com/canopy-ui/canopy/pkg/dispatch"
	"github.com/canopy-ui/canopy/pkg/metrics"
	"github.com/canopy-ui/canopy/pkg/vdom"
)

// DefaultPadding is the spacing applied between siblings when laying out a
// mounted instance's children.
const DefaultPadding = 8

// Config holds the root-level settings shared by an instance tree. Values
// are set at mount time through Option functions and inherited by every
// child mounted under the root.
type Config struct {
	Logger   *slog.Logger
	IDs      *dispatch.IDSource
	Metrics  *metrics.Collector
	Strategy vdom.Strategy
	Padding  float64
}

// Option customizes a root mount.
type Option func(*Config)

// WithLogger sets the logger for the instance tree.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithIDSource sets the handler ID source. Roots sharing one dispatch loop
// must share one source so identifiers stay unique across them.
func WithIDSource(ids *dispatch.IDSource) Option {
	return func(c *Config) {
		c.IDs = ids
	}
}

// WithMetrics sets the metrics collector for the instance tree.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// WithStrategy sets the reconciliation strategy for every instance in the
// tree. The default is keyed matching.
func WithStrategy(strategy vdom.Strategy) Option {
	return func(c *Config) {
		c.Strategy = strategy
	}
}

// WithPadding sets the spacing between sibling primitives.
func WithPadding(padding float64) Option {
	return func(c *Config) {
		c.Padding = padding
	}
}

func defaultConfig() Config {
	return Config{
		Logger:   slog.Default(),
		IDs:      dispatch.NewIDSource(),
		Strategy: vdom.StrategyKeyed,
		Padding:  DefaultPadding,
	}
}
