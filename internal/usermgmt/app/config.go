package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	LogFile             string        // Optional: also write logs to this daily rotated file
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database file (default: usermgmt.db)
	DatabaseURL    string // Postgres DSN, required when DatabaseDriver is postgres

	VerificationCodeTTL time.Duration // Lifetime of issued codes (default: 72h)
	FrontendBaseURL     string        // Prefix of the verification link sent to users

	NotificationServiceURL string        // Optional: notifications are only logged when empty
	NotificationTimeout    time.Duration // Per delivery timeout (default: 10s)
	NotificationQueueSize  int           // Pending notifications before dropping (default: 100)
}

func LoadConfig() Config {
	return Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:             os.Getenv("LOG_FILE"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseDriver: strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", DriverSQLite)),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "usermgmt.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		VerificationCodeTTL: getEnvDurationOrDefault("VERIFICATION_CODE_TTL", 72*time.Hour),
		FrontendBaseURL:     getEnvOrDefault("FRONTEND_BASE_URL", "http://localhost:3000"),

		NotificationServiceURL: os.Getenv("NOTIFICATION_SERVICE_URL"),
		NotificationTimeout:    getEnvDurationOrDefault("NOTIFICATION_TIMEOUT", 10*time.Second),
		NotificationQueueSize:  getEnvIntOrDefault("NOTIFICATION_QUEUE_SIZE", 100),
	}
}

// Validate reports settings the application cannot start with.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("DATABASE_FILE is required for the %s driver", DriverSQLite)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.VerificationCodeTTL <= 0 {
		return fmt.Errorf("VERIFICATION_CODE_TTL must be positive")
	}
	return nil
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

	// Try parsing as duration (e.g., "72h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
