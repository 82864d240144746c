package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// AuthMode values. "enforced" applies JWT + role checks to every /api route
// except the auth endpoints; "permissive" reproduces the legacy behaviour
// where all of /api is open. The default is the safe one.
const (
	AuthModeEnforced   = "enforced"
	AuthModePermissive = "permissive"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=1h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:5173"`
	AuthMode   string        `env:"AUTH_MODE,   default=enforced"`

	NotifyWorkers int `env:"NOTIFY_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=lawconnect"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from a .env file (when present) and the process
// environment. It fails when the configuration cannot serve a secure setup:
// a production build must provide its own JWT secret and a valid auth mode.
func Load() (*Config, error) {
	// Absent .env files are fine; the process environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.AuthMode != AuthModeEnforced && cfg.AuthMode != AuthModePermissive {
		return nil, fmt.Errorf("config: invalid AUTH_MODE %q", cfg.AuthMode)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			return nil, fmt.Errorf("config: JWT_SECRET is required outside development")
		}
		// Fixed development secret so tokens survive restarts locally.
		cfg.JWTSecret = "lawconnect-dev-secret-do-not-use-in-production"
	}

	return &cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
