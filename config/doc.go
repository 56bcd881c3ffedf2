// Package config loads genc configuration from YAML files, .env files,
// environment variables and command-line flags.
//
// It uses Viper for the merge and godotenv for .env files. Precedence, from
// lowest to highest: config.yml, environment (including .env), explicitly
// set flags.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("genc", &cfg,
//	    config.WithConfigFile(path),
//	    config.WithFlags(pflag.CommandLine),
//	)
//
// Environment variables map onto nested keys by underscore
// (e.g. LOGGING_LEVEL sets logging.level).
package config
