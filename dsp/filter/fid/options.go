package fid

// Option configures Design, DesignCoefficients, ParseSpec and Rewrite.
//
// The defaults only apply when a spec string leaves out its trailing
// frequency part, e.g. "LpBu4" against the format "LpBu#O/#F".
type Option func(*options)

type options struct {
	f0, f1 float64 // negative means "not supplied"
	exact  bool
}

// WithDefaultFrequency supplies the frequency (in Hz) used when a spec
// string omits a single-frequency part. Negative values count as missing.
func WithDefaultFrequency(f float64) Option {
	return func(o *options) {
		o.f0 = f
	}
}

// WithDefaultRange supplies the frequency range (in Hz) used when a spec
// string omits its range part. f0 alone also serves as the default single
// frequency.
func WithDefaultRange(f0, f1 float64) Option {
	return func(o *options) {
		o.f0 = f0
		o.f1 = f1
	}
}

// WithExact requests exact-response calibration for designs whose
// frequency comes from the defaults. A spec string that carries its own
// frequency selects calibration with a leading '=' instead.
func WithExact(exact bool) Option {
	return func(o *options) {
		o.exact = exact
	}
}

func applyOptions(opts []Option) options {
	o := options{f0: -1, f1: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
