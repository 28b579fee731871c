package observability

import "time"

// Config configures telemetry export.
type Config struct {
	// Enabled turns on OTLP export. When false, Setup installs nothing and
	// the global no-op providers stay in place.
	Enabled bool `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
	// Endpoint is the OTLP HTTP endpoint host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" json:"endpoint" validate:"required,hostname_port"`
	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" mapstructure:"insecure" json:"insecure"`
	// SampleRate is the trace sampling ratio in [0, 1].
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" json:"sample_rate" validate:"gte=0,lte=1"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval" json:"interval" validate:"gte=0"`
}

// DefaultConfig returns a disabled configuration pointing at a local collector.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "localhost:4318",
		Insecure:   true,
		SampleRate: 1.0,
		Interval:   15 * time.Second,
	}
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.Interval == 0 {
		c.Interval = d.Interval
	}
}

// ServiceInfo describes the process emitting telemetry.
type ServiceInfo struct {
	Name        string
	Version     string
	Environment string
}
