package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// ConfigOr returns the value for key, or fallback when the variable is unset.
func ConfigOr(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}
