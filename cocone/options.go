package cocone

import "github.com/cppd/math-sub006/delaunay"

// Progress mirrors hull.Progress/delaunay.Progress; reported during the
// Delaunay derivation NewConstructor performs internally.
type Progress = delaunay.Progress

type config struct {
	workers  int
	progress Progress
}

// Option configures NewConstructor, mirroring the functional-options
// convention used throughout this module (quant, hull, delaunay).
type Option func(*config)

// WithWorkers sets the worker-pool size forwarded to the hull/delaunay
// computation underlying the manifold constructor.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithProgress registers a callback forwarded to the underlying hull
// computation's progress reporting.
func WithProgress(fn Progress) Option {
	return func(c *config) { c.progress = fn }
}

func (c config) delaunayOptions() []delaunay.Option {
	var opts []delaunay.Option
	if c.workers > 0 {
		opts = append(opts, delaunay.WithWorkers(c.workers))
	}
	if c.progress != nil {
		opts = append(opts, delaunay.WithProgress(c.progress))
	}
	return opts
}
