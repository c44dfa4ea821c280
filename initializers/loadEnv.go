package initializers

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
}

func Getenv(key, fallback string) string {
	if value := os.Getenv(key); strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func GetenvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(Getenv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
