// Env loader
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSchema          string
	JWTSecret         string
	SmtpFrom          string
	SmtpPassword      string
	SmtpHost          string
	SmtpPort          string
	AIGatewayURL      string
	AIGatewayKey      string
	AIGatewayModel    string
	PrayerNotifyEmail string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		DBHost:            getEnv("ZEALOUS_DB_HOST", "localhost"),
		DBPort:            getEnv("ZEALOUS_DB_PORT", "5432"),
		DBName:            getEnv("ZEALOUS_DB_DATABASE", "zealous"),
		DBUser:            getEnv("ZEALOUS_DB_USERNAME", "postgres"),
		DBPassword:        getEnv("ZEALOUS_DB_PASSWORD", ""),
		DBSchema:          getEnv("ZEALOUS_DB_SCHEMA", "public"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		SmtpFrom:          getEnv("SMTP_FROM", ""),
		SmtpPassword:      getEnv("SMTP_PASSWORD", ""),
		SmtpHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SmtpPort:          getEnv("SMTP_PORT", "587"),
		AIGatewayURL:      getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIGatewayKey:      getEnv("AI_GATEWAY_KEY", ""),
		AIGatewayModel:    getEnv("AI_GATEWAY_MODEL", "google/gemini-3-flash-preview"),
		PrayerNotifyEmail: getEnv("PRAYER_NOTIFY_EMAIL", "scripturalzealous@gmail.com"),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
