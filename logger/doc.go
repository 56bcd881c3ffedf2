// Package logger provides structured logging for genc using zerolog.
//
// It supports JSON and console output, log level configuration and
// component-scoped loggers with structured fields. Logs go to stderr by
// default so that generated values on stdout stay machine readable.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("recipe")
//	log.Info("compiled", logger.Fields(logger.FieldRecipe, "ids"))
package logger
