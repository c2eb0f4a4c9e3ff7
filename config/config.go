package config

import "os"

// Config holds everything read from the environment at startup.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	BaseURL      string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
}

func Load() Config {
	return Config{
		Port:         getenv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DB_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET_KEY"),
		BaseURL:      getenv("BASE_URL", "http://localhost:8000"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASS"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
