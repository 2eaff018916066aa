package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port       string
	AppName    string
	AppVersion string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	DefaultLanguage string
	MaxQuizAttempts int
	ReminderTime    string // HH:MM, read by the settings seeder
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:       getEnv("PORT", "8000"),
		AppName:    getEnv("APP_NAME", "IVR Tutor"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "ivrtutor"),
		DBPort:     getEnv("DB_PORT", "5432"),

		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		MaxQuizAttempts: getEnvInt("MAX_QUIZ_ATTEMPTS", 3),
		ReminderTime:    getEnv("DAILY_REMINDER_TIME", "09:00"),
	}
}

// getEnv fetches an environment variable or returns the default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt fetches an environment variable as an integer or returns the default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
