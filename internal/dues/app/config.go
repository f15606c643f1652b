package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string // Optional: issuer claim for tokens (default: hoadues)
	AdminPassword string // Optional: initial admin password; generated and logged once when empty

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./hoadues.db)
	ReceiptDir          string        // Optional: directory for stored receipt files (default: ./receipts)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	SweepInterval       time.Duration // Orphaned receipt sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:        getEnvOrDefault("HOA_ISSUER", "hoadues"),
		AdminPassword: os.Getenv("HOA_ADMIN_PASSWORD"), // Optional: generated when unset
		DatabaseFile:  getEnvOrDefault("HOA_DATABASE_FILE", "hoadues.db"),
		ReceiptDir:    getEnvOrDefault("HOA_RECEIPT_DIR", "receipts"),
		PepperFile:    getEnvOrDefault("HOA_PEPPER_FILE", "pepper"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		SweepInterval:       getEnvDurationOrDefault("SWEEP_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
