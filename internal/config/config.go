package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Base address of the remote account service. Injected into the
	// gateway client at construction; never read from ambient state.
	AccountServiceURL     string        `envconfig:"ACCOUNT_SERVICE_URL" required:"true"`
	AccountServiceTimeout time.Duration `envconfig:"ACCOUNT_SERVICE_TIMEOUT" default:"10s"`

	DatabaseDSN string `envconfig:"DATABASE_DSN" required:"true"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads configuration from the environment, after an optional .env
// file when one is present.
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
