package annealing

// Options overrides the formula-derived constants of the cooling
// schedule. Zero values mean "use the spec default": Iterations defaults
// to max(1000, 50*n); InitialTemperature to 1.0; MinTemperature to 1e-4.
type Options struct {
	Iterations         int
	InitialTemperature float64
	MinTemperature     float64
}

// DefaultOptions returns the zero value, meaning every constant is derived
// from the graph size or the spec's fixed defaults.
func DefaultOptions() Options { return Options{} }

// Option mutates an Options value.
type Option func(*Options)

// WithIterations overrides the per-stage iteration budget. Values <= 0
// are ignored.
func WithIterations(iters int) Option {
	return func(o *Options) {
		if iters > 0 {
			o.Iterations = iters
		}
	}
}

// WithInitialTemperature overrides T0. Values <= 0 are ignored.
func WithInitialTemperature(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.InitialTemperature = t
		}
	}
}

// WithMinTemperature overrides T_min. Values <= 0 are ignored.
func WithMinTemperature(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.MinTemperature = t
		}
	}
}
