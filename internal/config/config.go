package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/yukikurage/contest-tracker/internal/constants"
)

const (
	defaultSessionSecret = "default-secret-key-change-me"
	defaultJWTSecret     = "default-jwt-secret-change-me"
)

type Config struct {
	Port string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	SessionSecret string
	SessionStore  string

	JWTSecret string
	TokenTTL  time.Duration

	GinMode  string
	LogLevel string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	LoginRateLimit  int
	LoginRateWindow time.Duration

	WebRoot string
}

// Load reads configuration from the environment, after loading a .env file if one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DBDriver:        getEnv("DB_DRIVER", "mysql"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "contestuser"),
		DBPassword:      getEnv("DB_PASSWORD", "contestpassword"),
		DBName:          getEnv("DB_NAME", "contest_tracker"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		SessionSecret:   getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionStore:    getEnv("SESSION_STORE", "cookie"),
		JWTSecret:       getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:        getEnvAsDuration("TOKEN_TTL", constants.DefaultTokenTTL),
		GinMode:         getEnv("GIN_MODE", "debug"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		LoginRateLimit:  getEnvAsInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: getEnvAsDuration("LOGIN_RATE_WINDOW", time.Minute),
		WebRoot:         getEnv("WEB_ROOT", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks required values and rejects default secrets in release mode.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}

	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.SessionStore {
	case "cookie", "redis":
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}

	if c.IsProduction() {
		if c.JWTSecret == defaultJWTSecret {
			return errors.New("JWT_SECRET must be changed from the default value in release mode")
		}
		if c.SessionSecret == defaultSessionSecret {
			return errors.New("SESSION_SECRET must be changed from the default value in release mode")
		}
	} else if len(c.JWTSecret) < 32 {
		slog.Warn("JWT_SECRET is shorter than 32 characters")
	}

	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
