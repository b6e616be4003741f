package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBPath     string
	JWTSecret  string
}

func Load() *Config {
	// Missing .env is fine, env vars may come from the environment proper.
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", "3000"),
		DBPath:     getEnv("DB_PATH", "cbt_arena.db"),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
