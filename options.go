package distribute

// Option configures a Distributor with optional dependencies.
type Option func(*distributorOptions)

// distributorOptions holds optional Distributor configuration.
type distributorOptions struct {
	logger  Logger
	metrics MetricsCollector
	hooks   *Hooks
}

// WithLogger sets a logger.
//
// The distributor only logs at debug level; failures are always returned to
// the caller as errors.
//
// Parameters:
//   - logger: Logger implementation (see the logging package for slog and zap adapters)
//
// Returns:
//   - Option: Functional option for NewDistributor
//
// Example:
//
//	d := distribute.NewDistributor[int](distribute.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger Logger) Option {
	return func(o *distributorOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewDistributor
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "")
//	d := distribute.NewDistributor[int](distribute.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *distributorOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets outcome callbacks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions; nil callbacks are skipped
//
// Returns:
//   - Option: Functional option for NewDistributor
//
// Example:
//
//	hooks := &distribute.Hooks{
//	    OnRejected: func(err error) { rejected.Add(1) },
//	}
//	d := distribute.NewDistributor[int](distribute.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *distributorOptions) {
		o.hooks = hooks
	}
}
