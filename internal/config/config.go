// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Backend identifies the persistence backend selected by Config.
type Backend string

const (
	BackendMongo    Backend = "mongo"
	BackendPostgres Backend = "postgres"
)

// ErrNoDatabase is returned when neither connection string is set.
var ErrNoDatabase = errors.New("MONGO_URL or DATABASE_URL must be set")

type Config struct {
	MongoURL    string `env:"MONGO_URL"`
	DatabaseURL string `env:"DATABASE_URL"`
	DBName      string `env:"DB_NAME" envDefault:"portfolio_db"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	Port            int           `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	Telemetry Telemetry
}

// Telemetry configures trace export. Tracing is disabled when Endpoint is empty.
type Telemetry struct {
	ServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"portfolio-api"`
	Environment string  `env:"ENVIRONMENT" envDefault:"local"`
	Endpoint    string  `env:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"`
	Insecure    bool    `env:"OTEL_EXPORTER_OTLP_TRACES_INSECURE"`
	SampleRatio float64 `env:"OTEL_TRACES_SAMPLER_RATIO" envDefault:"1"`
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over .env entries.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	// a missing .env is normal outside local development
	for _, f := range dotenvFiles {
		_ = godotenv.Load(f)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MongoURL == "" && c.DatabaseURL == "" {
		return ErrNoDatabase
	}
	if c.DBName == "" {
		return errors.New("DB_NAME must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// Backend reports which store to use. MongoDB wins when both URLs are set.
func (c *Config) Backend() Backend {
	if c.MongoURL != "" {
		return BackendMongo
	}
	return BackendPostgres
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
