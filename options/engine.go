package options

// EngineOptions configures a single visgraph.Build call.
type EngineOptions struct {
	// Workers selects single-threaded (1) or parallel (>1) visibility-graph
	// construction. Values less than 1 are treated as 1.
	Workers int

	// BatchSize is the number of source vertices dispatched to a worker in
	// one unit of work. Spec default: 10.
	BatchSize int

	// ShowProgress is a presentation hint; it has no effect on the result,
	// only on whether OnProgress is invoked.
	ShowProgress bool

	// OnProgress, if set and ShowProgress is true, is invoked once per
	// completed batch with (done, total).
	OnProgress func(done, total int)

	// Geometry is the tolerance/infinity configuration threaded through
	// every sweep the build performs.
	Geometry GeometryOptions
}

// DefaultEngineOptions returns single-threaded, silent, default-tolerance
// options.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		Workers:      1,
		BatchSize:    10,
		ShowProgress: false,
		Geometry:     DefaultGeometryOptions(),
	}
}

// EngineOptionFunc mutates an EngineOptions in place.
type EngineOptionFunc func(*EngineOptions)

// ApplyEngineOptions starts from DefaultEngineOptions and applies each
// EngineOptionFunc in order.
func ApplyEngineOptions(opts ...EngineOptionFunc) EngineOptions {
	o := DefaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets the number of parallel workers used to build the
// visibility graph. n < 1 is clamped to 1.
func WithWorkers(n int) EngineOptionFunc {
	return func(o *EngineOptions) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithBatchSize overrides the default batch size of 10 source vertices per
// unit of dispatched work.
func WithBatchSize(n int) EngineOptionFunc {
	return func(o *EngineOptions) {
		if n > 0 {
			o.BatchSize = n
		}
	}
}

// WithProgress enables progress reporting and sets the callback invoked
// once per completed batch.
func WithProgress(fn func(done, total int)) EngineOptionFunc {
	return func(o *EngineOptions) {
		o.ShowProgress = fn != nil
		o.OnProgress = fn
	}
}

// WithGeometry overrides the tolerance/infinity configuration used while
// building.
func WithGeometry(g GeometryOptions) EngineOptionFunc {
	return func(o *EngineOptions) {
		o.Geometry = g
	}
}
