package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"customer-service/internal/validation"

	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"

	DefaultSQLiteDSN = "file::memory:?cache=shared"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port             string        `env:"SERVER_PORT" validate:"required,listen_port"`
	Host             string        `env:"SERVER_HOST"`
	Environment      string        `env:"APP_ENV" validate:"oneof=development production testing"`
	ReadTimeout      time.Duration `env:"SERVER_READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout     time.Duration `env:"SERVER_WRITE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout  time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" validate:"min=1,dive,cors_origin"`
}

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" validate:"oneof=memory sqlite"`
	DSN     string `env:"DATABASE_DSN" validate:"required_if=Backend sqlite"`
	Debug   bool   `env:"DATABASE_DEBUG"`
}

type SecurityConfig struct {
	RateLimitPerSecond int  `env:"RATE_LIMIT_PER_SECOND" validate:"gte=0"`
	RateLimitBurst     int  `env:"RATE_LIMIT_BURST" validate:"min=1"`
	TrustProxyHeaders  bool `env:"TRUST_PROXY_HEADERS"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" validate:"oneof=json text"`
}

type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED"`
}

// LoadEnvFile loads variables from a dotenv file without overriding the environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("env file not found, relying on OS environment", "path", path)
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			Host:             getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:      getEnv("APP_ENV", "development"),
			ReadTimeout:      getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:  getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSAllowOrigins: getListEnv("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Store: StoreConfig{
			Backend: strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
			DSN:     getEnv("DATABASE_DSN", DefaultSQLiteDSN),
			Debug:   getBoolEnv("DATABASE_DEBUG", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 0),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			TrustProxyHeaders:  getBoolEnv("TRUST_PROXY_HEADERS", false),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolEnv("METRICS_ENABLED", true),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks every section against its validation tags
func (c *Config) Validate() error {
	v := validation.GetValidator()
	for _, section := range []interface{}{c.Server, c.Store, c.Security, c.Logging} {
		if err := v.ValidateStruct(section); err != nil {
			return err
		}
	}
	return nil
}

// Address returns the host:port the server listens on
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// RateLimitEnabled reports whether the per-IP limiter should be installed
func (c *SecurityConfig) RateLimitEnabled() bool {
	return c.RateLimitPerSecond > 0
}

// SlogLevel maps the configured level to a slog.Level
func (c *LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getListEnv splits a comma-separated variable and trims each entry
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
