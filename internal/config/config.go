package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds process-wide settings. Every field is optional; the env
// defaults below are the hardcoded fallbacks.
type Config struct {
	Environment string        `env:"ENV" envDefault:"production"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	Port        string        `env:"PORT" envDefault:"8080"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	DirectoryBaseURL string `env:"DIRECTORY_BASE_URL" envDefault:"https://api.openchargemap.io/v3"`
	DirectoryAPIKey  string `env:"DIRECTORY_API_KEY"`
	MapsAPIKey       string `env:"MAPS_API_KEY"`
	PositionBaseURL  string `env:"POSITION_BASE_URL" envDefault:"http://ip-api.com"`

	DefaultCenterLat   float64 `env:"DEFAULT_CENTER_LAT" envDefault:"37.7749"`
	DefaultCenterLng   float64 `env:"DEFAULT_CENTER_LNG" envDefault:"-122.4194"`
	DefaultRadiusMiles float64 `env:"DEFAULT_RADIUS_MILES" envDefault:"25"`
	MaxResults         int     `env:"MAX_RESULTS" envDefault:"100"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing config from environment: %w", err)
	}
	return &cfg, nil
}

// InitializeLogging sets up logging based on the configuration.
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Console-friendly output locally, structured JSON in production.
	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
