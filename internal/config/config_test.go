package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "admin@pdv.com", cfg.Auth.Operator.Email)
	assert.Equal(t, 1, cfg.Auth.Operator.ID)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, "dinheiro", cfg.Sale.DefaultPaymentMethod)
	assert.False(t, cfg.Sale.StrictBasket)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, "pdv_events", cfg.RabbitMQ.Exchange)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.Server.Port)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "SERVER_PORT: 4000\nLOG_LEVEL: debug\nSALE_STRICT_BASKET: true\nSTORAGE_DIR: /var/lib/pdv\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ORIGINS", "http://caixa.local, http://localhost:5173")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Sale.StrictBasket)
	assert.Equal(t, "/var/lib/pdv", cfg.Storage.Dir)
	assert.Equal(t, []string{"http://caixa.local", "http://localhost:5173"}, cfg.Server.CORSOrigins)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_TTL", "eight hours")

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_TOKEN_TTL")
}

func TestLoad_UnknownStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestLoad_MySQLDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MySQL")
	t.Setenv("DB_PORT", "3307")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StorageMySQL, cfg.Storage.Driver)
	assert.Equal(t, 3307, cfg.Database.Port)
}
