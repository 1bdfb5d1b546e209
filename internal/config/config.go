package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	PostgresURL string

	// FounderKey guards the /founder routes via the ?key= query parameter.
	// The default is a well-known placeholder and must be overridden in any
	// real deployment.
	FounderKey string

	// UploadDir is where photo files land, relative to the working
	// directory. Stored Photo.FilePath values are relative to it too.
	UploadDir string

	SMTP SMTPConfig
}

// SMTPConfig carries outbound mail settings. If any field is left empty
// (or Port is 0) the notification path treats mail as not configured and
// skips sending instead of failing.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		Environment: os.Getenv("ENV"),
		Port:        os.Getenv("PORT"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		FounderKey:  os.Getenv("FOUNDER_KEY"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     os.Getenv("FROM_EMAIL"),
		},
	}

	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", portStr, err)
		}
		cfg.SMTP.Port = port
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "8001"
	}
	if cfg.FounderKey == "" {
		cfg.FounderKey = "letmein"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "static/uploads"
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is required but not set")
	}

	return cfg, nil
}

// MailConfigured reports whether every setting needed to actually send
// mail is present.
func (c *Config) MailConfigured() bool {
	s := c.SMTP
	return s.Host != "" && s.Port > 0 && s.Username != "" && s.Password != "" && s.From != ""
}
