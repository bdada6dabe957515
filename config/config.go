package config

import (
	"os"
	"path/filepath"
)

// Config holds the runtime settings, all sourced from the environment.
type Config struct {
	Port           string
	DataDir        string
	UploadsDir     string
	SendGridAPIKey string
	EmailSender    string
}

// Load reads the configuration from environment variables, applying defaults
// for anything unset.
func Load() Config {
	return Config{
		Port:           getenv("PORT", "2000"),
		DataDir:        getenv("DATA_DIR", "data"),
		UploadsDir:     getenv("UPLOADS_DIR", filepath.Join("public", "uploads")),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailSender:    getenv("EMAIL_SENDER", "noreply@storefront.local"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
