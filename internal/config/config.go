package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development"`
	Port        string `env:"PORT" env-default:"8000"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`

	Database DatabaseConfig
	JWT      JWTConfig
	Events   EventsConfig

	RedisURL           string   `env:"REDIS_URL"`
	CertificateBaseURL string   `env:"CERTIFICATE_BASE_URL" env-default:"https://cert.example.com"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type DatabaseConfig struct {
	Driver       string        `env:"DB_DRIVER" env-default:"postgres"`
	URL          string        `env:"DATABASE_URL" env-default:"host=localhost user=postgres password=postgres dbname=cms port=5432 sslmode=disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLife  time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET"`
	Issuer    string        `env:"JWT_ISSUER" env-default:"course-service"`
	AccessTTL time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"60m"`
}

type EventsConfig struct {
	KafkaBrokers []string `env:"KAFKA_BROKERS" env-separator:","`
	TopicPrefix  string   `env:"EVENTS_TOPIC_PREFIX" env-default:"cms"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.AccessTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}

// SlogLevel parses LOG_LEVEL, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
