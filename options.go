package clipmask

import "github.com/gogpu/clipmask/internal/lum"

// Option configures a mask application.
// Use functional options to customize Apply behavior.
//
// Example:
//
//	// Default: luminance mode, best applicator
//	err := clipmask.Apply(img, mask)
//
//	// Alpha mode on a fixed number of workers
//	err := clipmask.ApplyParallel(img, mask, clipmask.WithMode(clipmask.MaskAlpha), clipmask.WithWorkers(4))
type Option func(*applyOptions)

// applyOptions holds optional configuration for mask application.
type applyOptions struct {
	mode       Mode
	workers    int
	applicator lum.Applicator
}

// defaultOptions returns the default apply options.
func defaultOptions() applyOptions {
	return applyOptions{
		mode:       MaskLuminance,
		workers:    0, // ApplyParallel resolves 0 to GOMAXPROCS
		applicator: nil,
	}
}

// WithMode selects the mask mode. The default is MaskLuminance.
func WithMode(m Mode) Option {
	return func(o *applyOptions) {
		o.mode = m
	}
}

// WithWorkers sets the worker count for ApplyParallel.
// Zero or negative means GOMAXPROCS. Serial Apply ignores it.
func WithWorkers(n int) Option {
	return func(o *applyOptions) {
		o.workers = n
	}
}

// WithScalar forces the scalar reference kernel.
// Useful for benchmark baselines and for debugging suspected batch issues;
// output is byte-identical either way.
func WithScalar() Option {
	return func(o *applyOptions) {
		o.applicator = lum.Scalar{}
	}
}

// resolve applies the options and picks an applicator.
func resolve(opts []Option) applyOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.applicator == nil {
		o.applicator = lum.Best()
	}
	return o
}
