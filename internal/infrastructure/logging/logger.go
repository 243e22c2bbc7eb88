package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fleetsmith/macbook-catalog/internal/infrastructure/config"
)

// Logger is the service-wide structured logger, a thin wrapper over
// slog.Logger. Every entry carries the service name and build version so
// aggregated logs from multiple deployments stay attributable.
//
// All methods are safe for concurrent use from multiple goroutines.
type Logger struct {
	*slog.Logger
}

// New builds a Logger from the logging section of the configuration.
//
// Format selects the handler: "text" for human-readable development
// output, anything else gets JSON for machine parsing. Output picks the
// destination ("stderr" or stdout). Level strings are parsed leniently;
// unrecognised values fall back to info rather than failing startup over
// a logging knob.
func New(cfg config.LoggingConfig, version string) *Logger {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stderr":
		output = os.Stderr
	default:
		output = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = slog.NewJSONHandler(output, opts)
	}

	// Stamp every entry with the service identity.
	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "catalogd"),
		slog.String("version", version),
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// parseLevel maps a level string (debug, info, warn/warning, error) to a
// slog.Level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a child Logger carrying extra default attributes, typically
// a component tag:
//
//	apiLog := log.With("component", "api")
//	apiLog.Info("listening") // includes component=api
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// Default returns a JSON/info/stdout logger for use during early startup,
// before the configuration file has been read. Once config is loaded the
// caller should replace it with New.
func Default() *Logger {
	return New(config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	}, "dev")
}
