package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort      string
	Environment  string
	DBDSN        string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	JWTSecret    string
}

// Load reads configuration from the environment (and .env, if present).
// Missing required variables are reported as an error; the caller decides
// whether that is fatal.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		AppPort:      getEnv("APP_PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		DBDSN:        os.Getenv("DB_DSN"),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     587,
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SMTP_PORT must be a number: %w", err)
		}
		cfg.SMTPPort = port
	}

	required := []struct {
		name  string
		value string
	}{
		{"DB_DSN", cfg.DBDSN},
		{"SMTP_USER", cfg.SMTPUser},
		{"SMTP_PASSWORD", cfg.SMTPPassword},
		{"JWT_SECRET", cfg.JWTSecret},
	}
	for _, v := range required {
		if v.value == "" {
			return nil, fmt.Errorf("%s is required but not set", v.name)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
