package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.Addr)
	assert.Equal(t, 0, cfg.DB)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	assert.True(t, cfg.FlushOnConnect)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REDCACHE_ADDR", "redis.internal:6380")
	t.Setenv("REDCACHE_DB", "3")
	t.Setenv("REDCACHE_BACKEND", BackendBadger)
	t.Setenv("REDCACHE_PATH", "/var/lib/redcache")
	t.Setenv("REDCACHE_DIAL_TIMEOUT", "250ms")
	t.Setenv("REDCACHE_FLUSH", "false")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", cfg.Addr)
	assert.Equal(t, 3, cfg.DB)
	assert.Equal(t, BackendBadger, cfg.Backend)
	assert.Equal(t, "/var/lib/redcache", cfg.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.DialTimeout)
	assert.False(t, cfg.FlushOnConnect)
}
