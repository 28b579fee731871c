package accumulate

// Config selects and tunes the default strategy.
type Config struct {
	Strategy  string `yaml:"strategy" mapstructure:"strategy" json:"strategy" validate:"omitempty,oneof=recursive tail-recursive imperative parallel"`
	Workers   int    `yaml:"workers" mapstructure:"workers" json:"workers" validate:"gte=0"`
	ChunkSize int    `yaml:"chunk_size" mapstructure:"chunk_size" json:"chunk_size" validate:"gte=0"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	if c.Strategy == "" {
		c.Strategy = NameImperative
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}
}

// Resolve returns the configured strategy, carrying Workers and ChunkSize
// into Parallel.
func (c Config) Resolve() (Strategy, error) {
	s, err := Lookup(c.Strategy)
	if err != nil {
		return nil, err
	}
	if _, ok := s.(Parallel); ok {
		return Parallel{Workers: c.Workers, ChunkSize: c.ChunkSize}, nil
	}
	return s, nil
}

// WithStrategy returns a copy of c selecting the named strategy.
func (c Config) WithStrategy(name string) Config {
	c.Strategy = name
	return c
}
