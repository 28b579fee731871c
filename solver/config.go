package solver

// DefaultEpsilon is the tolerance used when none is configured.
const DefaultEpsilon = 0.0001

// Config holds solver precision settings.
type Config struct {
	// Epsilon is the convergence tolerance and derivative step.
	Epsilon float64 `yaml:"epsilon" mapstructure:"epsilon" json:"epsilon" validate:"gt=0,lt=1"`
	// MaxIterations caps FixedPoint iterations; 0 means unbounded.
	MaxIterations int `yaml:"max_iterations" mapstructure:"max_iterations" json:"max_iterations" validate:"gte=0"`
}

// DefaultConfig returns the default solver configuration.
func DefaultConfig() Config {
	return Config{Epsilon: DefaultEpsilon}
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Epsilon <= 0 {
		c.Epsilon = DefaultEpsilon
	}
	if c.MaxIterations < 0 {
		c.MaxIterations = 0
	}
}
