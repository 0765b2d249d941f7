package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, SaveBackendFile, cfg.SaveBackend)
		assert.Equal(t, DefaultSavePath, cfg.SavePath)
		assert.Equal(t, DefaultSaveSlot, cfg.SaveSlot)
		assert.Equal(t, ConfigPathFlowers, cfg.FlowersCSV)
		assert.Equal(t, ConfigPathBalance, cfg.BalancePath)
		assert.Zero(t, cfg.Seed)
		assert.Empty(t, cfg.APIKey, "API key is optional")
		assert.Equal(t, DefaultFlowerCacheSize, cfg.FlowerCacheSize)
		assert.Equal(t, 10*time.Minute, cfg.FlowerCacheTTL)
		assert.Equal(t, DefaultEventRetentionDays, cfg.EventRetentionDays)
		assert.Equal(t, 2*time.Second, cfg.EventRetryDelay)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("SAVE_BACKEND", "postgres")
		t.Setenv("SAVE_SLOT", "spring")
		t.Setenv("SEED", "424242")
		t.Setenv("DB_USER", "customuser")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "customdb")
		t.Setenv("EVENT_RETENTION_DAYS", "7")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, SaveBackendPostgres, cfg.SaveBackend)
		assert.Equal(t, "spring", cfg.SaveSlot)
		assert.Equal(t, int64(424242), cfg.Seed)
		assert.Equal(t, int64(424242), cfg.SeedOrNow())
		assert.Equal(t, "customuser", cfg.DBUser)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "customdb", cfg.DBName)
		assert.Equal(t, 7, cfg.EventRetentionDays)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("rejects unknown save backend", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SAVE_BACKEND", "floppy")

		cfg, err := Load()

		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SAVE_BACKEND")
	})

	t.Run("rejects non-numeric seed", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SEED", "lucky")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid SEED")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", false},
			{"max valid port", "65535", false},
			{"above max port", "65536", false}, // Loads but invalid for use
			{"not a number", "not-a-number", true},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestSeedOrNow_FallsBackToClock(t *testing.T) {
	cfg := &Config{}
	assert.NotZero(t, cfg.SeedOrNow())
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "user",
		DBPassword: "p@ss:word",
		DBHost:     "db.example.com",
		DBPort:     "5433",
		DBName:     "bouquet",
	}

	// URL encoding of the password is left to the driver
	assert.Equal(t, "postgres://user:p@ss:word@db.example.com:5433/bouquet?sslmode=disable", cfg.GetDBConnString())
}

func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "TRUSTED_PROXIES", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"SAVE_BACKEND", "SAVE_PATH", "SAVE_SLOT", "FLOWERS_CSV", "BALANCE_PATH", "SEED",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"FLOWER_CACHE_SIZE", "FLOWER_CACHE_TTL", "EVENT_RETENTION_DAYS",
		"EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY", "EVENT_DEADLETTER_PATH",
	}

	for _, key := range envVars {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		}
		os.Unsetenv(key)
	}
}
