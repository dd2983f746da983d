package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mwalczyk/redcache/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKVStoreDelegates(t *testing.T) {
	ctx := context.Background()
	kv := NewKVStore(testRedis(t))
	require.NoError(t, kv.Ping(ctx))
	require.NoError(t, kv.Set(ctx, "k", "v"))
	data, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)
	require.NoError(t, kv.RPush(ctx, "l", "a"))
	n, err := kv.LLen(ctx, "l")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpenRedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Addr:        mr.Addr(),
		Backend:     config.BackendRedis,
		DialTimeout: time.Second,
	}
	kv, err := Open(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.NoError(t, kv.Ping(context.Background()))
	assert.NoError(t, kv.Close())
}

func TestOpenBadgerBackend(t *testing.T) {
	cfg := &config.Config{
		Backend: config.BackendBadger,
		Path:    t.TempDir(),
	}
	kv, err := Open(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.NoError(t, kv.Ping(context.Background()))
	assert.NoError(t, kv.Close())
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := &config.Config{Backend: "etcd"}
	_, err := Open(cfg, zap.NewNop().Sugar())
	assert.ErrorContains(t, err, "unknown store backend")
}
