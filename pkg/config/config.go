package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port          string
	RegionDataset string
	DatabaseURL   string
	Environment   string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		RegionDataset: getEnv("REGION_DATASET", "data/regions.json"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Environment:   getEnv("ENVIRONMENT", "development"),
	}

	// The catalog must come from somewhere: either the generated dataset
	// file or a database. Refuse to start in production without an explicit
	// source rather than fall back to a relative default path.
	if cfg.Environment == "production" {
		if os.Getenv("REGION_DATASET") == "" && cfg.DatabaseURL == "" {
			log.Fatal("Production environment detected, but neither REGION_DATASET nor DATABASE_URL set")
		}
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
