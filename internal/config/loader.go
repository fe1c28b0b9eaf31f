// Package config loads and validates application configuration from YAML
// files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables consulted by ApplyEnv
const (
	EnvPort         = "METRO_PORT"
	EnvStationsFile = "METRO_STATIONS_FILE"
	EnvLogLevel     = "METRO_LOG_LEVEL"
)

// Default returns the built-in configuration
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Data: DataConfig{
			StationsFile: "data/hyderabad_metro_stations.csv",
		},
		Planner: PlannerConfig{
			CacheSize: 1024,
			CacheTTL:  10 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path yields the defaults.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any METRO_* variables returned by getenv
func ApplyEnv(cfg *AppConfig, getenv func(string) string) error {
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvPort, v)
		}
		cfg.Server.Port = port
	}
	if v := getenv(EnvStationsFile); v != "" {
		cfg.Data.StationsFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	return cfg.Validate()
}

// Validate checks every section of the configuration
func (c AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
