// catalogd - MacBook support-lifecycle catalog service
//
// This is the main entry point for the catalog API server. It exposes a
// read-only REST catalog of MacBook hardware models (2010-2025) so that
// IT-management tooling can query device support lifecycle, search, filter,
// and sort without scraping vendor pages.
//
// The dataset is loaded once at startup from a JSON document and held
// immutably in memory for the process lifetime; a missing or malformed
// dataset aborts startup rather than serving partial data.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fleetsmith/macbook-catalog/internal/api"
	"github.com/fleetsmith/macbook-catalog/internal/catalog"
	"github.com/fleetsmith/macbook-catalog/internal/infrastructure/config"
	"github.com/fleetsmith/macbook-catalog/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the application
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting macbook-catalog",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Load the catalog dataset. This is the fail-fast boundary: a missing or
	// invalid dataset means the process refuses to start.
	store, err := catalog.Load(cfg.Catalog.DataPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	log.Info("catalog loaded",
		"path", cfg.Catalog.DataPath,
		"devices", store.Count(),
	)

	// Start the API server
	server, err := api.New(api.Deps{
		Config:   cfg.API,
		Security: cfg.Security,
		Logger:   log,
		Store:    store,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server listening",
		"address", fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port),
		"tls", cfg.API.TLS.Enabled,
	)

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses CATALOG_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("CATALOG_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
