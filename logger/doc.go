// Package logger provides structured logging for numkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers carrying structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("solver")
//	log.Debug("converged", logger.Fields("iterations", n, "value", x))
package logger
