package dispatch

import (
	"context"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/canopy-ui/canopy/pkg/metrics"
)

// Default tracer name for engine spans.
const defaultTracerName = "canopy"

// LoopConfig configures the dispatch loop.
type LoopConfig struct {
	// Buffer is the queue capacity (default: 64).
	Buffer int

	// Logger is the structured logger (default: slog.Default()).
	Logger *slog.Logger

	// Metrics is the engine metrics collector. May be nil.
	Metrics *metrics.Collector

	// TracerName is the OpenTelemetry tracer name (default: "canopy").
	// The tracer is resolved from the global tracer provider.
	TracerName string
}

// LoopOption configures the dispatch loop.
type LoopOption func(*LoopConfig)

// WithBuffer sets the queue capacity.
func WithBuffer(n int) LoopOption {
	return func(c *LoopConfig) {
		c.Buffer = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(c *LoopConfig) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Collector) LoopOption {
	return func(c *LoopConfig) {
		c.Metrics = m
	}
}

// WithTracerName sets the OpenTelemetry tracer name.
func WithTracerName(name string) LoopOption {
	return func(c *LoopConfig) {
		c.TracerName = name
	}
}

func defaultLoopConfig() LoopConfig {
	return LoopConfig{
		Buffer:     64,
		Logger:     slog.Default(),
		TracerName: defaultTracerName,
	}
}

// Loop is the serialized execution context. Producers call Schedule from any
// goroutine; Run delivers the queued messages one at a time, in order, to
// the sink. Nothing else may call the sink while Run is active.
type Loop struct {
	sink    Sink
	queue   chan Message
	done    chan struct{}
	closed  atomic.Bool
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics.Collector
}

// NewLoop creates a dispatch loop delivering to sink.
func NewLoop(sink Sink, opts ...LoopOption) *Loop {
	config := defaultLoopConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Loop{
		sink:    sink,
		queue:   make(chan Message, config.Buffer),
		done:    make(chan struct{}),
		logger:  config.Logger,
		tracer:  otel.Tracer(config.TracerName),
		metrics: config.Metrics,
	}
}

// Schedule enqueues a message for delivery. Safe to call from any
// goroutine, including platform input callbacks. Messages scheduled after
// Close are dropped with a log entry.
func (l *Loop) Schedule(msg Message) {
	if l.closed.Load() {
		l.logger.Warn("message dropped, loop closed", "id", uint64(msg.ID), "kind", payloadKind(msg))
		return
	}
	select {
	case l.queue <- msg:
	case <-l.done:
		l.logger.Warn("message dropped, loop closed", "id", uint64(msg.ID), "kind", payloadKind(msg))
	}
}

// Run delivers messages until ctx is cancelled or Close is called. It must
// run on exactly one goroutine; that goroutine is the engine's single
// logical thread of control.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case msg := <-l.queue:
			l.deliver(ctx, msg)
		}
	}
}

// Close stops the loop. Pending undelivered messages are discarded.
func (l *Loop) Close() {
	if l.closed.CompareAndSwap(false, true) {
		close(l.done)
	}
}

// deliver hands one message to the sink under a span. Faults raised by the
// sink are construction bugs and propagate; the loop makes no attempt to
// recover partial state.
func (l *Loop) deliver(ctx context.Context, msg Message) {
	kind := payloadKind(msg)

	_, span := l.tracer.Start(ctx, "canopy.dispatch", trace.WithAttributes(
		attribute.Int64("canopy.message_id", int64(msg.ID)),
		attribute.String("canopy.payload_kind", kind),
	))
	defer span.End()

	l.metrics.RecordMessage(kind)
	l.logger.Debug("delivering message", "id", uint64(msg.ID), "kind", kind)

	l.sink.Dispatch(msg)
}

func payloadKind(msg Message) string {
	if msg.Payload == nil {
		return "none"
	}
	return msg.Payload.Kind()
}
