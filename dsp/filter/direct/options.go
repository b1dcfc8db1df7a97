package direct

// DefaultRingOut is the default number of zero-input samples BiDirectional
// runs after the end of the output buffer.
const DefaultRingOut = 10000

// Config holds BiDirectional settings.
type Config struct {
	// RingOut is the length of the decay tail computed after the forward
	// pass and consumed by the backward pass before it reaches the output.
	RingOut int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{RingOut: DefaultRingOut}
}

// WithRingOut sets the ring-out tail length. Negative values are ignored;
// zero disables the tail.
func WithRingOut(samples int) Option {
	return func(cfg *Config) {
		if samples >= 0 {
			cfg.RingOut = samples
		}
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
