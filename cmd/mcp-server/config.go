package main

import (
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from the environment and an
// optional .env file
type Config struct {
	APIKey               string        `env:"SPLITWISE_API_KEY,required=true"`
	BaseURL              string        `env:"SPLITWISE_BASE_URL"`
	Timeout              time.Duration `env:"SPLITWISE_TIMEOUT,default=30s"`
	MaxRetries           int           `env:"SPLITWISE_MAX_RETRIES,default=0"`
	RequireCallerInSplit bool          `env:"SPLITWISE_REQUIRE_CALLER_IN_SPLIT,default=true"`
	SentryDSN            string        `env:"SENTRY_DSN"`
	LogLevel             string        `env:"LOG_LEVEL,default=info"`
}

// loadConfig reads configuration from .env (when present) and the process
// environment
func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
