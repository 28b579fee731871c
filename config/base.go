package config

// Environments accepted in BaseConfig.Environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// BaseConfig identifies the running application.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to the base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = AppName
	}
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
}
