package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATA_BACKEND", "DB_AUTO_MIGRATE", "REMINDER_PAGE_SIZE", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendPostgres, cfg.DataBackend)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, 5, cfg.ReminderLimit)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("REMINDER_PAGE_SIZE", "not-a-number")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "painel")
	t.Setenv("DB_SSLMODE", "require")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, 5, cfg.ReminderLimit, "unparseable values fall back to the default")
	assert.Equal(t, "postgres://app:secret@db:5433/painel?sslmode=require", cfg.DSN())
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := &Config{
		Port:          "99999",
		DataBackend:   "sheets",
		LogFormat:     "xml",
		ReqTimeoutSec: 0,
		ReminderLimit: 0,
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"invalid port 99999", "invalid data backend 'sheets'", "invalid log format", "request timeout", "reminder page size"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidatePostgresRequiresConnection(t *testing.T) {
	cfg := &Config{Port: "8080", DataBackend: BackendPostgres, LogFormat: "json", ReqTimeoutSec: 30, ReminderLimit: 5}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST is required")

	cfg.DataBackend = BackendMemory
	assert.NoError(t, cfg.Validate())
}
