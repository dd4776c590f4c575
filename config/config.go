package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DataDir     string
	SecretKey   string
	FrontendURL string
	// Gemini Configuration (optional - /ai/summary returns 503 without it)
	GeminiAPIKey string
	GeminiModel  string
}

func LoadConfig() (*Config, error) {
	// .env is only present on local setups; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		SecretKey:    getEnv("SECRET_KEY", ""),
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	if cfg.SecretKey == "" {
		log.Println("WARNING: SECRET_KEY is missing. Login tokens cannot be issued.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not configured. /ai/summary will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
