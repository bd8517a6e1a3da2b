package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"JWT_TTL,   default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
	Rate  RateConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sweetshop"`
}

// RedisConfig is optional: an empty Addr disables login throttling and the
// redis readiness check.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdminConfig seeds an administrator account at startup when both fields are
// set and the email is not yet registered.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME,     default=Administrator"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

type RateConfig struct {
	LoginLimit  int64         `env:"LOGIN_RATE_LIMIT,  default=10"`
	LoginWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

// Production reports whether the service runs with production hardening
// (error envelopes carry no debug detail).
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
