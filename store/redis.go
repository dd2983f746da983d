package store

import (
	"context"

	"github.com/mwalczyk/redcache/config"
	"github.com/redis/go-redis/v9"
	"github.com/ztrue/tracerr"
	"go.uber.org/zap"
)

// Redis is a Store backed by a redis server.
type Redis struct {
	client *redis.Client
	log    *zap.SugaredLogger
}

// NewRedis creates a redis backed store. The connection is established
// lazily; call Ping to verify the server is reachable.
func NewRedis(cfg *config.Config, log *zap.SugaredLogger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	return &Redis{
		client: client,
		log:    log,
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return tracerr.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Redis) RPush(ctx context.Context, list string, value string) error {
	return r.client.RPush(ctx, list, value).Err()
}

func (r *Redis) LRange(ctx context.Context, list string, start, stop int64) ([]string, error) {
	return r.client.LRange(ctx, list, start, stop).Result()
}

func (r *Redis) LLen(ctx context.Context, list string) (int64, error) {
	return r.client.LLen(ctx, list).Result()
}

func (r *Redis) FlushDB(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
