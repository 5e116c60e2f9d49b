package deplete

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Option configures AssembleBatch. Options never affect matrix values, only
// scheduling and observability.
type Option func(*options)

type options struct {
	workers int
	log     *slog.Logger
}

// WithWorkers bounds the number of regions assembled concurrently.
// Panics when n < 1: a zero-width pool is a programmer error.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("deplete: WithWorkers(%d): worker count must be >= 1", n))
	}

	return func(o *options) { o.workers = n }
}

// WithLogger attaches a structured logger emitting debug-level batch
// lifecycle records. The numeric kernels themselves never log.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// gatherOptions applies opts over the defaults: one worker per CPU thread
// (assembly is pure computation, more only churn), no logging.
func gatherOptions(opts ...Option) options {
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
