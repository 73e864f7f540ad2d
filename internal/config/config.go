package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	if os.Getenv("DB_DSN") == "" {
		Logger.Fatal("DB_DSN is not set")
	}

	if os.Getenv("JWT_SECRET") == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}

	// REDIS_ADDR is optional: without it the page cache is disabled.
	if os.Getenv("REDIS_ADDR") == "" {
		Logger.Info("REDIS_ADDR is not set, page cache disabled")
	}
}

// MediaRoot is the directory uploaded images are written under.
func MediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "media"
}
