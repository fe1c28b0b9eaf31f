package config

import "time"

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"readTimeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" validate:"gte=0"`
	IdleTimeout     time.Duration `yaml:"idleTimeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" validate:"gte=0"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
}

// DataConfig points at the station table
type DataConfig struct {
	StationsFile string `yaml:"stationsFile" validate:"required"`
}

// PlannerConfig controls itinerary caching
type PlannerConfig struct {
	CacheSize int           `yaml:"cacheSize" validate:"gte=0"`
	CacheTTL  time.Duration `yaml:"cacheTTL" validate:"gte=0"`
}

// LogConfig selects log verbosity and encoding
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Planner PlannerConfig `yaml:"planner"`
	Log     LogConfig     `yaml:"log"`
}
