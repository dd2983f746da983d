package store

import (
	"context"
	"fmt"

	"github.com/mwalczyk/redcache/config"
	"go.uber.org/zap"
)

// Store is the contract of the external key-value store. Get returns
// (nil, nil) for a missing key; a missing key is never an error.
type Store interface {
	Ping(ctx context.Context) error
	Set(ctx context.Context, key string, value string) error
	Get(ctx context.Context, key string) ([]byte, error)
	RPush(ctx context.Context, list string, value string) error
	LRange(ctx context.Context, list string, start, stop int64) ([]string, error)
	LLen(ctx context.Context, list string) (int64, error)
	FlushDB(ctx context.Context) error
	Close() error
}

// KVStore composes a backend Store behind a single handle.
type KVStore struct {
	Store
}

func NewKVStore(store Store) *KVStore {
	return &KVStore{store}
}

// Open creates a store for the backend named in cfg.
func Open(cfg *config.Config, log *zap.SugaredLogger) (*KVStore, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return NewKVStore(NewRedis(cfg, log)), nil
	case config.BackendBadger:
		b, err := NewBadger(cfg.Path, log)
		if err != nil {
			return nil, err
		}
		return NewKVStore(b), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
