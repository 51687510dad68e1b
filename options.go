package sortvis

// Option configures a Session with optional dependencies.
type Option func(*sessionOptions)

// sessionOptions holds optional Session configuration.
type sessionOptions struct {
	source    SequenceSource
	sourceSet bool
	hooks     *Hooks
	metrics   MetricsCollector
	logger    Logger
}

// WithSource sets the sequence source that produces the initial values.
//
// By default the source is derived from Config.Input and Config.Seed.
//
// Parameters:
//   - src: SequenceSource implementation (must not be nil)
//
// Returns:
//   - Option: Functional option for NewSession
//
// Example:
//
//	sess, err := sortvis.NewSession(&cfg, sortvis.WithSource(source.NewStatic([]int{5, 4, 3, 2, 1})))
func WithSource(src SequenceSource) Option {
	return func(o *sessionOptions) {
		o.source = src
		o.sourceSet = true
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewSession
//
// Example:
//
//	hooks := &sortvis.Hooks{
//	    OnCompleted: func(ctx context.Context, r sortvis.Result) error {
//	        log.Printf("%s: %d comparisons", r.Algorithm, r.Comparisons)
//	        return nil
//	    },
//	}
//	sess, err := sortvis.NewSession(&cfg, sortvis.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *sessionOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSession
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "sortvis")
//	sess, err := sortvis.NewSession(&cfg, sortvis.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *sessionOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for NewSession
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	sess, err := sortvis.NewSession(&cfg, sortvis.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}
