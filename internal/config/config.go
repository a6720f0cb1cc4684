package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Discord transport
	DiscordToken string
	DiscordAppID string

	// Ops HTTP server
	Port int

	// Logging
	LogLevel    string
	LogFormat   string
	Environment string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Item catalog
	CatalogPath string

	// Progression
	MessageCooldownMillis int64

	// Store access policy
	StoreTimeout    time.Duration
	StoreMaxRetries int
	StoreRetryDelay time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		DiscordAppID: os.Getenv("DISCORD_APP_ID"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "quarterbot"),
		CatalogPath:  getEnv("CATALOG_PATH", "configs/items.json"),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable must be set")
	}
	if cfg.DiscordAppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID environment variable must be set")
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cooldown, err := getEnvInt("MESSAGE_COOLDOWN_MS", 60_000)
	if err != nil {
		return nil, err
	}
	cfg.MessageCooldownMillis = int64(cooldown)

	timeoutMs, err := getEnvInt("STORE_TIMEOUT_MS", 5_000)
	if err != nil {
		return nil, err
	}
	cfg.StoreTimeout = time.Duration(timeoutMs) * time.Millisecond

	retries, err := getEnvInt("STORE_MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}
	cfg.StoreMaxRetries = retries

	delayMs, err := getEnvInt("STORE_RETRY_DELAY_MS", 100)
	if err != nil {
		return nil, err
	}
	cfg.StoreRetryDelay = time.Duration(delayMs) * time.Millisecond

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
