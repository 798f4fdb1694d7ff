package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"mess-bill/internal/billing"
)

// Config holds process-level settings and the defaults offered for billing inputs.
type Config struct {
	// HTTP Server
	Port        string
	MaxUploadMB int

	// Sessions
	SessionTTL  time.Duration
	MaxSessions int

	// Billing defaults
	DefaultStudents int
	DefaultDecimals int
	RoundingMode    string

	LogLevel string
}

// LoadEnvFile loads a .env file for local development. A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		MaxUploadMB: getEnvInt("MESS_MAX_UPLOAD_MB", 32),

		SessionTTL:  getEnvDuration("MESS_SESSION_TTL", 12*time.Hour),
		MaxSessions: getEnvInt("MESS_MAX_SESSIONS", 1000),

		DefaultStudents: getEnvInt("MESS_DEFAULT_STUDENTS", 50),
		DefaultDecimals: getEnvInt("MESS_DEFAULT_DECIMALS", 0),
		RoundingMode:    getEnv("MESS_ROUNDING_MODE", string(billing.RoundHalfEven)),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MaxUploadMB < 1 {
		errs = append(errs, fmt.Sprintf("invalid max upload size %d MB: must be at least 1", c.MaxUploadMB))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Sprintf("invalid session ttl %s: must be positive", c.SessionTTL))
	}
	if c.MaxSessions < 1 {
		errs = append(errs, fmt.Sprintf("invalid max sessions %d: must be at least 1", c.MaxSessions))
	}
	if c.DefaultStudents < 1 {
		errs = append(errs, fmt.Sprintf("invalid default number of students %d: must be at least 1", c.DefaultStudents))
	}
	if !validDecimals(c.DefaultDecimals) {
		errs = append(errs, fmt.Sprintf("invalid default rounding decimals %d: must be 0, 1 or 2", c.DefaultDecimals))
	}
	if _, err := billing.ParseRoundingMode(c.RoundingMode); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Rounding returns the configured rounding mode, falling back to half-even.
func (c *Config) Rounding() billing.RoundingMode {
	mode, err := billing.ParseRoundingMode(c.RoundingMode)
	if err != nil {
		return billing.RoundHalfEven
	}
	return mode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
