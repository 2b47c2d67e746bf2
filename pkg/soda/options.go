package soda

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	registerer   prometheus.Registerer
	namespace    string
	tracer       trace.Tracer
	errorHandler func(error)
	debug        bool
	maxRerenders int
}

func defaultConfig() config {
	return config{
		namespace:    "soda",
		maxRerenders: 100,
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics registers renderer metrics with reg. Without it no metrics
// are collected.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = reg
	}
}

// WithMetricsNamespace sets the metrics namespace (default: "soda").
func WithMetricsNamespace(namespace string) Option {
	return func(c *config) {
		c.namespace = namespace
	}
}

// WithTracer sets the tracer used for render and update spans.
// Default: the global otel tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithErrorHandler sets the function receiving errors from updates that
// have no caller to return to, such as an update triggered by a state
// setter inside an event handler. The default handler panics.
func WithErrorHandler(fn func(error)) Option {
	return func(c *config) {
		c.errorHandler = fn
	}
}

// WithDebug enables debug logging of mounts, updates and sweeps.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.debug = debug
	}
}

// WithMaxRerenders bounds how many times Update re-renders an instance that
// invalidated itself while rendering. Default: 100.
func WithMaxRerenders(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxRerenders = n
		}
	}
}
