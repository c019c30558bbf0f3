package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the engine metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "canopy").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the engine metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "canopy",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the Prometheus metrics for one engine root.
// A nil *Collector is valid and records nothing.
type Collector struct {
	rendersTotal      prometheus.Counter
	rendersSkipped    prometheus.Counter
	renderDuration    prometheus.Histogram
	patchesApplied    *prometheus.CounterVec
	messagesTotal     *prometheus.CounterVec
	messagesForwarded prometheus.Counter
	rowsMaterialized  prometheus.Counter
	instancesMounted  prometheus.Gauge
}

// New creates a Collector and registers its metrics.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Collector{
		rendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of render cycles that produced a diff",
			ConstLabels: config.ConstLabels,
		}),

		rendersSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_skipped_total",
			Help:        "Render triggers short-circuited by unchanged props and state",
			ConstLabels: config.ConstLabels,
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render cycle duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		patchesApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_applied_total",
			Help:        "Total patch operations applied against the renderer",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		messagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "messages_total",
			Help:        "Total messages delivered through the dispatch loop",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		messagesForwarded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "messages_forwarded_total",
			Help:        "Messages forwarded to child instances during routing",
			ConstLabels: config.ConstLabels,
		}),

		rowsMaterialized: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rows_materialized_total",
			Help:        "List rows materialized on backend request",
			ConstLabels: config.ConstLabels,
		}),

		instancesMounted: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "instances_mounted",
			Help:        "Number of currently mounted component instances",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// RecordRender records a completed render cycle and its duration.
func (c *Collector) RecordRender(d time.Duration) {
	if c == nil {
		return
	}
	c.rendersTotal.Inc()
	c.renderDuration.Observe(d.Seconds())
}

// RecordRenderSkipped records a render trigger that short-circuited.
func (c *Collector) RecordRenderSkipped() {
	if c == nil {
		return
	}
	c.rendersSkipped.Inc()
}

// RecordPatch records one applied patch operation.
func (c *Collector) RecordPatch(op string) {
	if c == nil {
		return
	}
	c.patchesApplied.WithLabelValues(op).Inc()
}

// RecordMessage records one delivered message by payload kind.
func (c *Collector) RecordMessage(kind string) {
	if c == nil {
		return
	}
	c.messagesTotal.WithLabelValues(kind).Inc()
}

// RecordForward records one forwarding of a message to a child instance.
func (c *Collector) RecordForward() {
	if c == nil {
		return
	}
	c.messagesForwarded.Inc()
}

// RecordRow records one materialized list row.
func (c *Collector) RecordRow() {
	if c == nil {
		return
	}
	c.rowsMaterialized.Inc()
}

// InstanceMounted records a component instance entering the Mounted state.
func (c *Collector) InstanceMounted() {
	if c == nil {
		return
	}
	c.instancesMounted.Inc()
}

// InstanceUnmounted records a component instance leaving the Mounted state.
func (c *Collector) InstanceUnmounted() {
	if c == nil {
		return
	}
	c.instancesMounted.Dec()
}
