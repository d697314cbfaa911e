package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration.
type Config struct {
	Port         string
	FeesAPIURL   string
	ServiceToken string
	LogLevel     string
	HTTPTimeout  time.Duration
	SnapshotCron string
}

// Load reads configuration from environment variables. A .env file is
// loaded first when present so local development does not need exports.
func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		FeesAPIURL:   getEnv("FEES_API_URL", "http://localhost:5000/api"),
		ServiceToken: getEnv("FEES_API_TOKEN", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SnapshotCron: getEnv("SNAPSHOT_CRON", "0 20 * * *"),
	}
	cfg.HTTPTimeout = time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second

	if cfg.FeesAPIURL == "" {
		return nil, fmt.Errorf("FEES_API_URL is required")
	}
	return cfg, nil
}

// NewLogger builds the application logger at the configured level.
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultVal
}
