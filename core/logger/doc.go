// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for the CLI (console encoding by default) or for
// machine consumption (json), and integrates with the Fiber request chain.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so every line about one request can be
// correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Serving at http://localhost:8000")
package logger
