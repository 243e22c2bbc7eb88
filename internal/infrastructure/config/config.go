package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the catalog service.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	API      APIConfig      `yaml:"api"`
	Logging  LoggingConfig  `yaml:"logging"`
	Security SecurityConfig `yaml:"security"`
}

// CatalogConfig contains dataset source settings.
type CatalogConfig struct {
	// DataPath is the JSON document the catalog is loaded from at startup.
	DataPath string `yaml:"data_path"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	TLS      TLSConfig        `yaml:"tls"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
	CORS     CORSConfig       `yaml:"cors"`
}

// TLSConfig contains TLS certificate settings.
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// APITimeoutConfig contains HTTP timeout settings in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// SecurityConfig contains security settings.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig contains request rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	Burst             int  `yaml:"burst"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: CATALOG_SECTION_KEY
// For example: CATALOG_DATA_PATH, CATALOG_API_PORT. The plain PORT variable
// is also honoured for the listen port, so platform schedulers that inject
// PORT work without service-specific configuration.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			DataPath: "data/macbook_models.json",
		},
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 3000,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Security: SecurityConfig{
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerMinute: 300,
				Burst:             50,
			},
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: CATALOG_SECTION_KEY.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CATALOG_DATA_PATH"); v != "" {
		cfg.Catalog.DataPath = v
	}
	if v := os.Getenv("CATALOG_API_HOST"); v != "" {
		cfg.API.Host = v
	}

	// Listen port: CATALOG_API_PORT wins over the generic PORT.
	portVar := "PORT"
	portVal := os.Getenv("PORT")
	if v := os.Getenv("CATALOG_API_PORT"); v != "" {
		portVar, portVal = "CATALOG_API_PORT", v
	}
	if portVal != "" {
		port, err := strconv.Atoi(portVal)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", portVar, err)
		}
		cfg.API.Port = port
	}

	if v := os.Getenv("CATALOG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CATALOG_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	return nil
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Catalog.DataPath == "" {
		errs = append(errs, "catalog.data_path is required")
	}

	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	if c.API.TLS.Enabled {
		if c.API.TLS.CertFile == "" || c.API.TLS.KeyFile == "" {
			errs = append(errs, "api.tls.cert_file and api.tls.key_file are required when TLS is enabled")
		}
	}

	if c.Security.RateLimit.Enabled && c.Security.RateLimit.RequestsPerMinute < 1 {
		errs = append(errs, "security.rate_limit.requests_per_minute must be at least 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetReadTimeout returns the API read timeout as a Duration.
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the API write timeout as a Duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Write) * time.Second
}

// GetIdleTimeout returns the API idle timeout as a Duration.
func (c *Config) GetIdleTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Idle) * time.Second
}
