package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	Environment     string
	LogFile         string // Rotated JSON log file, empty for console only
	SessionDuration time.Duration
	SessionSecret   string
	// Login attempts allowed per client IP per minute
	LoginRateLimit int

	// Answer journal
	JournalEnabled bool
	DatabaseType   string // "sqlite", "postgres" or "mysql"
	DatabasePath   string // For SQLite
	DatabaseURL    string // For PostgreSQL/MySQL
	MigrationsPath string

	// Email (Amazon SES)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	SupportEmail string
	AppBaseURL   string
	EmailDebug   bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	environment := getEnv("APP_ENV", "development")

	// Only development gets a fixed secret; elsewhere an unset secret is
	// replaced with a random one at startup
	secretDefault := ""
	if strings.EqualFold(environment, "development") {
		secretDefault = "quizowl-development-secret"
	}

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		Environment:     environment,
		LogFile:         getEnv("LOG_FILE", ""),
		SessionDuration: getEnvAsDuration("SESSION_DURATION", 24*time.Hour),
		SessionSecret:   getEnv("SESSION_SECRET", secretDefault),
		LoginRateLimit:  getEnvAsInt("LOGIN_RATE_LIMIT", 10),
		JournalEnabled:  getEnvAsBool("JOURNAL_ENABLED", false),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./quizowl.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:    getEnv("SES_FROM_EMAIL", ""),
		SESFromName:     getEnv("SES_FROM_NAME", "QuizOwl"),
		SupportEmail:    getEnv("SUPPORT_EMAIL", ""),
		AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:8080"),
		EmailDebug:      getEnvAsBool("EMAIL_DEBUG", false),
	}
}

// IsProduction reports whether the server runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsDuration accepts Go duration strings such as "30m" or "12h"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
