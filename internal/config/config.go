package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	APIBaseURL     string
	StateDir       string
	ListenAddr     string
	RequestTimeout time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		APIBaseURL:     strings.TrimRight(getEnvOrDefault("API_BASE_URL", "https://localhost:7260/api"), "/"),
		StateDir:       getEnvOrDefault("STATE_DIR", ".lazapee"),
		ListenAddr:     ":" + getEnvOrDefault("PORT", "8080"),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 15, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
