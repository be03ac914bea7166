// Package logger provides structured logging for the OpenAPI client using
// zerolog.
//
// The client logs through a *Logger it is given; without one it stays
// silent (Nop). Loggers carry a service name and can be scoped to a
// component or enriched with fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.NewFromEnv("billing-sync").WithComponent("openapi")
//	log.Debug("request sent", logger.Fields(logger.FieldURI, "/api/jobs", logger.FieldStatus, 200))
package logger
