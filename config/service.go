package config

import (
	"fmt"
	"slices"

	"github.com/kbukum/genc/errors"
	"github.com/kbukum/genc/logger"
)

var validEnvironments = []string{"development", "staging", "production"}

// ServiceConfig contains the configuration fields every genc binary needs.
// Commands extend this by embedding it in their own config structs.
//
// Example:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Count int            `yaml:"count" mapstructure:"count"`
//	}
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig returns the base ServiceConfig.
// When embedded in a larger config struct, this method is promoted.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "genc"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call c.ServiceConfig.Validate() first.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return errors.InvalidConfig("config.name is required").WithDetail("field", "name")
	}
	if !slices.Contains(validEnvironments, c.Environment) {
		return errors.InvalidConfig(fmt.Sprintf("config.environment must be one of %v (got: %s)", validEnvironments, c.Environment)).
			WithDetail("field", "environment")
	}
	return c.Logging.Validate()
}
