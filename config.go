package eventbus

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-driven construction settings for a Bus.
type Config struct {
	Verbose bool `env:"EVENTBUS_VERBOSE" envDefault:"false"`
}

// LoadConfig reads Config from environment variables, merging values from a
// .env file in the working directory when one exists.
func LoadConfig() (Config, error) {
	// A missing .env file is not an error; real env vars still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse eventbus config: %w", err)
	}
	return cfg, nil
}

// NewFromEnv constructs a Bus configured from the environment. Explicit
// options are applied after the environment, so they win on conflict.
//
// Example:
//
//	// EVENTBUS_VERBOSE=true
//	bus, err := eventbus.NewFromEnv(eventbus.WithLogger(logger))
func NewFromEnv(opts ...Option) (*Bus, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return New(append([]Option{WithVerboseLogging(cfg.Verbose)}, opts...)...), nil
}
