package strided

// Config controls kernel selection.
type Config struct {
	// ContiguousFastPath enables the unrolled kernels when every operand
	// has unit stride.
	ContiguousFastPath bool
	// ForceGeneric bypasses the CPU-specific float64 kernels and runs the
	// pure Go unrolled loops instead.
	ForceGeneric bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		ContiguousFastPath: true,
	}
}

// WithForceGeneric selects the pure Go unrolled loops for float64 buffers.
func WithForceGeneric() Option {
	return func(cfg *Config) {
		cfg.ForceGeneric = true
	}
}

// WithContiguousFastPath enables or disables the unit-stride fast path.
// With the fast path off every call runs the strided loops.
func WithContiguousFastPath(enabled bool) Option {
	return func(cfg *Config) {
		cfg.ContiguousFastPath = enabled
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
