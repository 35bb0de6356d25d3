package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, ":8888", cfg.Addr())
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 15*time.Minute, cfg.LoginCooldown)
	assert.False(t, cfg.AdminAuthRequired)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("ADMIN_AUTH_REQUIRED", "true")
	t.Setenv("REDIS_URI", "localhost:6379")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.AdminAuthRequired)
	assert.True(t, cfg.NotificationsEnabled())
	assert.True(t, cfg.IsProduction())
}

func TestNormalizeDriver(t *testing.T) {
	assert.Equal(t, StoreSQLite, normalizeDriver(" sqlite "))
	assert.Equal(t, StoreMemory, normalizeDriver("postgres"))
}
