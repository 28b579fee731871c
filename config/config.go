package config

import (
	"github.com/kbukum/numkit/accumulate"
	"github.com/kbukum/numkit/errors"
	"github.com/kbukum/numkit/logger"
	"github.com/kbukum/numkit/observability"
	"github.com/kbukum/numkit/solver"
	"github.com/kbukum/numkit/validation"
)

// AppName is the default application name and the search key for config files.
const AppName = "numkit"

// Config is the complete numkit configuration.
type Config struct {
	BaseConfig    `yaml:",inline" mapstructure:",squash"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Solver        solver.Config        `yaml:"solver" mapstructure:"solver"`
	Accumulate    accumulate.Config    `yaml:"accumulate" mapstructure:"accumulate"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills every unset section.
func (c *Config) ApplyDefaults() {
	c.BaseConfig.ApplyDefaults()
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Solver.ApplyDefaults()
	c.Accumulate.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks struct tags on every section and the logging settings.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	return nil
}

// Load resolves, reads, defaults and validates the configuration.
func Load(opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := LoadConfig(AppName, cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
