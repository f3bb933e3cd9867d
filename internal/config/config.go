package config

import (
	"log"
	"os"
)

const (
	defaultDBPath       = "./quoter.db"
	defaultPort         = "8080"
	defaultCORSOrigin   = "https://joledev.com"
	defaultContactEmail = "joel@joledev.com"
	defaultFromEmail    = "JoleDev <noreply@joledev.com>"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port         string
	DBPath       string
	CORSOrigin   string
	ResendAPIKey string
	ContactEmail string
	FromEmail    string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		Port:         os.Getenv("PORT"),
		DBPath:       os.Getenv("DB_PATH"),
		CORSOrigin:   os.Getenv("CORS_ORIGIN"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		ContactEmail: os.Getenv("CONTACT_EMAIL"),
		FromEmail:    os.Getenv("FROM_EMAIL"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = defaultCORSOrigin
	}
	if cfg.ContactEmail == "" {
		cfg.ContactEmail = defaultContactEmail
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = defaultFromEmail
	}

	if cfg.ResendAPIKey == "" {
		log.Print("warning: RESEND_API_KEY is not set, submission emails are disabled")
	}

	return cfg
}
