package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port          string
	AllowOrigins  string
	DataBackend   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool
	LogLevel      string
	LogFormat     string
	ReqTimeoutSec int
	ReminderLimit int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func atob(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		AllowOrigins:  getenv("ALLOW_ORIGINS", "*"),
		DataBackend:   getenv("DATA_BACKEND", BackendPostgres),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", ""),
		DBName:        getenv("DB_NAME", "painel"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		DBAutoMigrate: atob("DB_AUTO_MIGRATE", false),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "json"),
		ReqTimeoutSec: atoi("REQUEST_TIMEOUT_SECONDS", 30),
		ReminderLimit: atoi("REMINDER_PAGE_SIZE", 5),
	}
}

// DSN builds the postgres connection URL.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DBHost == "" {
			problems = append(problems, "DB_HOST is required for the postgres backend")
		}
		if c.DBName == "" {
			problems = append(problems, "DB_NAME is required for the postgres backend")
		}
		if c.DBUser == "" {
			problems = append(problems, "DB_USER is required for the postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s]", c.DataBackend, BackendPostgres, BackendMemory))
	}

	if c.LogFormat != "json" && c.LogFormat != "text" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be json or text", c.LogFormat))
	}
	if c.ReqTimeoutSec < 1 {
		problems = append(problems, fmt.Sprintf("invalid request timeout %d: must be at least 1 second", c.ReqTimeoutSec))
	}
	if c.ReminderLimit < 1 || c.ReminderLimit > 50 {
		problems = append(problems, fmt.Sprintf("invalid reminder page size %d: must be between 1 and 50", c.ReminderLimit))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
