// Package logger provides structured logging for confkit using zerolog.
//
// The loader logs through a component-scoped logger obtained with
// Get("config"). Unregistered components fall back to the global default
// logger. Applications register a dedicated logger under the component name
// or pass one to the builder.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// The same settings can be read from LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT,
// LOG_NO_COLOR, LOG_TIMESTAMP and LOG_CALLER with NewFromEnv.
//
// # Usage
//
//	log := logger.Get("config")
//	log.Debug("reading config file", logger.Fields("path", path))
package logger
