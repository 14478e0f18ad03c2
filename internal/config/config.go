package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port          string
	DBPath        string
	RedisAddr     string
	YouTubeAPIKey string
	LogLevel      string
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
