package main

import (
	"github.com/kbukum/genc/config"
	"github.com/kbukum/genc/observability"
	"github.com/kbukum/genc/recipe"
	"github.com/kbukum/genc/validation"
	"github.com/kbukum/genc/version"
)

// Config is the genc command configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// Count is the number of values pulled from each recipe.
	Count int `yaml:"count" mapstructure:"count"`
	// Recipe restricts the run to the named recipe.
	Recipe  string        `yaml:"recipe" mapstructure:"recipe"`
	Recipes []recipe.Spec `yaml:"recipes" mapstructure:"recipes"`

	Metrics observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults fills service identity into the telemetry configs.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Version == "" {
		c.Version = version.GetShortVersion()
	}
	for _, svc := range []*string{&c.Metrics.ServiceName, &c.Tracing.ServiceName} {
		if *svc == "" {
			*svc = c.Name
		}
	}
	for _, v := range []*string{&c.Metrics.ServiceVersion, &c.Tracing.ServiceVersion} {
		if *v == "" {
			*v = c.Version
		}
	}
	for _, env := range []*string{&c.Metrics.Environment, &c.Tracing.Environment} {
		if *env == "" {
			*env = c.Environment
		}
	}
}

// Validate checks the service fields and the count. Recipes are validated
// when they are compiled.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	v := validation.New()
	v.Min("count", c.Count, 0)
	v.Custom(c.Tracing.SampleRate >= 0 && c.Tracing.SampleRate <= 1, "tracing.sample_rate", "must be between 0 and 1")
	return v.Validate()
}
