// Package logging wraps log/slog with the catalog service's conventions:
// a configurable handler (JSON or text, stdout or stderr, leveled), plus
// service and version attributes stamped on every entry.
//
// The logger is configured from the logging section of config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Typical use:
//
//	log := logging.New(cfg.Logging, version)
//	log.Info("catalog loaded", "devices", store.Count())
//
// Default() covers the window before configuration is available.
package logging
