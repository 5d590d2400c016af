package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port        string        `env:"PORT, default=8080"`
	Env         string        `env:"APP_ENV, default=dev"`
	DatabaseURL string        `env:"DATABASE_URL, default=salon.db"`
	JWTSecret   string        `env:"JWT_SECRET, default=change-me-jwt-secret"`
	JWTTTL      time.Duration `env:"JWT_TTL, default=24h"`
	LogLevel    string        `env:"LOG_LEVEL, default=info"`
	LogPretty   bool          `env:"LOG_PRETTY, default=false"`
	CORSOrigins string        `env:"CORS_ALLOWED_ORIGINS"`
}

func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if c.isProdLike() && c.JWTSecret == "change-me-jwt-secret" {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func (c *Config) isProdLike() bool {
	return c.Env == "prod" || c.Env == "production" || c.Env == "release"
}
