package crawl

// Concurrency bounds for simultaneously in-flight page tasks.
const (
	DefaultConcurrency = 20
	MaxConcurrency     = 50
)

// Config controls a section crawl.
type Config struct {
	// MaxConcurrency bounds in-flight page tasks. Zero means
	// DefaultConcurrency; other values are clamped to
	// [1, MaxConcurrency].
	MaxConcurrency int

	// HTTPOnly disables the render tier entirely: render-based
	// discovery is skipped and failed direct fetches are not
	// escalated.
	HTTPOnly bool

	// FallbackToRender enables per-page escalation to the render
	// tier when the direct tier comes back empty, failed, or with
	// too little content.
	FallbackToRender bool
}

// DefaultConfig returns the default crawl configuration.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency:   DefaultConcurrency,
		FallbackToRender: true,
	}
}

// normalize clamps MaxConcurrency into its valid range.
func (c Config) normalize() Config {
	switch {
	case c.MaxConcurrency == 0:
		c.MaxConcurrency = DefaultConcurrency
	case c.MaxConcurrency < 1:
		c.MaxConcurrency = 1
	case c.MaxConcurrency > MaxConcurrency:
		c.MaxConcurrency = MaxConcurrency
	}
	return c
}
