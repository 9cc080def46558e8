package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile   string        // Optional: path to SQLite database file (default: ./potluck.db)
	PepperFile     string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SessionKeyFile string        // Optional: path to session cookie signing key file (default: ./session.key)
	SessionCookie  string        // Optional: session cookie name (default: potluck_session)
	SessionTTL     time.Duration // Optional: session lifetime (default: 72h)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:   getEnvOrDefault("POTLUCK_DATABASE_FILE", "potluck.db"),
		PepperFile:     getEnvOrDefault("POTLUCK_PEPPER_FILE", "pepper"),
		SessionKeyFile: getEnvOrDefault("POTLUCK_SESSION_KEY_FILE", "session.key"),
		SessionCookie:  getEnvOrDefault("POTLUCK_SESSION_COOKIE", "potluck_session"),
		SessionTTL:     getEnvDurationOrDefault("POTLUCK_SESSION_TTL", 72*time.Hour),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
