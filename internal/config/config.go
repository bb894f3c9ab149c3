package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Session store backends.
const (
	StoreCookie   = "cookie"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

type Config struct {
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	AppPort      string
	AppEnv       string
	JWTSecret    string
	RedisURL     string
	SessionStore string
	// SessionTTL bounds how long redis keeps a client record. Zero keeps it forever.
	SessionTTL   time.Duration
	CookieSecure bool
	// InternalSecretKey lets trusted services use the internal rate limit tier.
	InternalSecretKey string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:       os.Getenv("DB_HOST"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       os.Getenv("DB_PORT"),
		AppPort:      getenv("APP_PORT", "8080"),
		AppEnv:       getenv("APP_ENV", "development"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		RedisURL:     os.Getenv("REDIS_URL"),
		SessionStore: getenv("SESSION_STORE", StoreCookie),
		CookieSecure: os.Getenv("APP_ENV") == "production",

		InternalSecretKey: os.Getenv("INTERNAL_SECRET_KEY"),
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = ttl
	}

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE %q: %w", v, err)
		}
		cfg.CookieSecure = secure
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBHost == "" {
		return fmt.Errorf("environment variables not loaded properly: DB_HOST is empty")
	}

	switch c.SessionStore {
	case StoreCookie, StorePostgres, StoreMemory:
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("SESSION_STORE=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore)
	}

	return nil
}

// DSN returns the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
