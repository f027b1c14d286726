package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "soft", cfg.Recurring.RejectPolicy)
		assert.Equal(t, 24*time.Hour, cfg.Reminder.Interval)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Empty(t, cfg.Redis.URL)
		require.NoError(t, cfg.Validate())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "SQLite")
		t.Setenv("DATABASE_URL", "ledger.db")
		t.Setenv("RECURRING_REJECT_POLICY", "hard")
		t.Setenv("REMINDER_INTERVAL", "1h")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("SERVER_PORT", "not-a-number")

		cfg := Load()

		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "ledger.db", cfg.Database.URL)
		assert.Equal(t, "hard", cfg.Recurring.RejectPolicy)
		assert.Equal(t, time.Hour, cfg.Reminder.Interval)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, 8080, cfg.Server.Port)
		require.NoError(t, cfg.Validate())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"empty database url", func(c *Config) { c.Database.URL = "" }},
		{"unknown reject policy", func(c *Config) { c.Recurring.RejectPolicy = "archive" }},
		{"default secret in production", func(c *Config) { c.Server.Environment = "production" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
