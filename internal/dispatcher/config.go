package dispatcher

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics enables per-action timing and statistics.
	EnableMetrics bool

	// RecoverFromPanic turns a handler panic into an ErrPanic error.
	// Panics signal broken invariants, so this is off by default.
	RecoverFromPanic bool

	// MaxRepeatCount limits the repeat count of an action.
	// Zero means no limit.
	MaxRepeatCount int
}

// DefaultConfig returns the configuration the editor runs with.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:  true,
		MaxRepeatCount: 10000,
	}
}

// WithMetrics returns a copy of the config with metrics set.
func (c Config) WithMetrics(enable bool) Config {
	c.EnableMetrics = enable
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithMaxRepeatCount returns a copy of the config with the max repeat count set.
func (c Config) WithMaxRepeatCount(max int) Config {
	c.MaxRepeatCount = max
	return c
}
