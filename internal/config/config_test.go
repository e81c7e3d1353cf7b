package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // без .env файла
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("API_KEYS", " key-1 , key-2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "https://api.example.com/system/health", cfg.NetworkProbeURL)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, 20*time.Second, cfg.SyncInterval)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, "Pernambuco, Brazil", cfg.GeocodeRegion)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("SYNC_INTERVAL", "5s")
	t.Setenv("SYNC_USER_ID", "17")
	t.Setenv("NETWORK_PROBE_URL", "https://probe.example.com")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, 5*time.Second, cfg.SyncInterval)
	assert.Equal(t, int64(17), cfg.SyncUserID)
	assert.Equal(t, "https://probe.example.com", cfg.NetworkProbeURL)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadConfig_MissingAPIBaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_BASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL")
}

func TestValidate_StorageDriver(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://x", StorageDriver: "postgres", SyncInterval: time.Second}
	require.Error(t, cfg.Validate())

	cfg.DatabaseURL = "postgres://localhost/db"
	require.NoError(t, cfg.Validate())

	cfg.StorageDriver = "leveldb"
	require.Error(t, cfg.Validate())
}
