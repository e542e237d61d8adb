package delaunay

import "github.com/cppd/math-sub006/hull"

// Progress is called after each point has been inserted into the
// underlying lifted-space hull engine.
type Progress = hull.Progress

type config struct {
	workers  int
	progress Progress
}

// Option configures Compute, following this module's functional-options
// convention.
type Option func(*config)

// WithWorkers sets the worker-pool size of the underlying hull engine.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithProgress installs a progress callback, forwarded to the underlying
// hull engine.
func WithProgress(fn Progress) Option {
	return func(c *config) { c.progress = fn }
}

func (c config) hullOptions() []hull.Option {
	var opts []hull.Option
	if c.workers > 0 {
		opts = append(opts, hull.WithWorkers(c.workers))
	}
	if c.progress != nil {
		opts = append(opts, hull.WithProgress(c.progress))
	}
	return opts
}
