package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	JWTSecret            string
	AdminDefaultPassword string

	// Cycle summary email (optional; disabled when SummaryEmail is empty)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	SummaryEmail string
}

func Load() *Config {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/fueltracker?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:            getEnv("JWT_SECRET", "your-secret-key"),
		AdminDefaultPassword: getEnv("ADMIN_DEFAULT_PASSWORD", "Bagr123"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@fueltracker.local"),
		FromName:     getEnv("FROM_NAME", "FuelTracker"),
		SummaryEmail: getEnv("SUMMARY_EMAIL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
