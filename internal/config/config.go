package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Data    DataConfig
	Geocode GeocodeConfig
	Cache   CacheConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// DataConfig locates the raw distribution files and the generated datasets
type DataConfig struct {
	SourceDir       string // directory scanned for .csv/.xlsx distribution files
	OutputDir       string // directory receiving one <CC>.json per country
	FunctionDialect string // positional (default) or legacy
}

// GeocodeConfig tunes the coordinate back-fill against the geocoding provider
type GeocodeConfig struct {
	APIKey        string
	BaseURL       string        // override for tests; empty means the public API
	RequestDelay  time.Duration // pacing between dispatched records
	Timeout       time.Duration // per-request HTTP timeout
	MaxConcurrent int           // geocoding chains in flight at once
}

// CacheConfig holds the query-side dataset cache settings
type CacheConfig struct {
	TTL time.Duration
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.unlocode")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("data.sourceDir", "data-source")
	viper.SetDefault("data.outputDir", "json-data")
	viper.SetDefault("data.functionDialect", "positional")
	viper.SetDefault("geocode.requestDelay", "200ms")
	viper.SetDefault("geocode.timeout", "10s")
	viper.SetDefault("geocode.maxConcurrent", 4)
	viper.SetDefault("cache.ttl", "24h")

	// Read from environment variables
	viper.SetEnvPrefix("UNLOCODE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
