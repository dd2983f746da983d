package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// BackendRedis selects the networked redis store.
	BackendRedis = "redis"
	// BackendBadger selects the embedded badger store.
	BackendBadger = "badger"
)

type Config struct {
	// Addr address of the redis store
	Addr string `env:"REDCACHE_ADDR" envDefault:"localhost:6379"`
	// Password redis auth password, empty for no auth
	Password string `env:"REDCACHE_PASSWORD"`
	// DB redis database number
	DB int `env:"REDCACHE_DB" envDefault:"0"`
	// Backend store backend, redis or badger
	Backend string `env:"REDCACHE_BACKEND" envDefault:"redis"`
	// Path directory for the badger backend
	Path string `env:"REDCACHE_PATH" envDefault:"/tmp/redcache"`
	// DialTimeout timeout for the initial connection
	DialTimeout time.Duration `env:"REDCACHE_DIAL_TIMEOUT" envDefault:"5s"`
	// FlushOnConnect wipe the active namespace when the cache is created
	FlushOnConnect bool `env:"REDCACHE_FLUSH" envDefault:"true"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
