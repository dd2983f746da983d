package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/mwalczyk/redcache/config"
	"github.com/mwalczyk/redcache/history"
	"github.com/mwalczyk/redcache/store"
	"github.com/ztrue/tracerr"
	"go.uber.org/zap"
)

// OpName is the qualified name the store operation is recorded under.
const OpName = "cache.Store"

// DecodeFunc transforms raw stored bytes into a caller value.
type DecodeFunc func(data []byte) (interface{}, error)

// Cache stores scalar values in an external key-value store under
// randomly generated keys. The store operation is wrapped once, at
// construction, by a history recorder; retrieval is not recorded.
type Cache struct {
	store    store.Store
	cfg      *config.Config
	log      *zap.SugaredLogger
	recorder *history.Recorder
	storeOp  history.StoreFunc
}

// New creates a cache over st. It pings the store and, unless disabled in
// cfg, wipes the active namespace. Prior state is not recoverable after
// the wipe.
func New(ctx context.Context, cfg *config.Config, st store.Store, log *zap.SugaredLogger) (*Cache, error) {
	c := &Cache{
		store: st,
		cfg:   &config.Config{},
		log:   log,
	}
	if err := copier.Copy(c.cfg, cfg); err != nil {
		return nil, err
	}
	if err := st.Ping(ctx); err != nil {
		return nil, tracerr.Errorf("%w: %v", ErrStoreUnreachable, err)
	}
	if c.cfg.FlushOnConnect {
		if err := st.FlushDB(ctx); err != nil {
			return nil, err
		}
		log.Debugf("flushed store namespace")
	}
	c.recorder = history.NewRecorder(st, OpName, log)
	c.storeOp = c.recorder.Wrap(c.rawStore)
	return c, nil
}

// Store writes value under a fresh random key and returns the key.
// Accepted values: string, []byte, int, int64, float32, float64.
func (c *Cache) Store(ctx context.Context, value interface{}) (string, error) {
	return c.storeOp(ctx, value)
}

func (c *Cache) rawStore(ctx context.Context, value interface{}) (string, error) {
	encoded, err := encode(value)
	if err != nil {
		return "", err
	}
	key := uuid.NewString()
	if err := c.store.Set(ctx, key, encoded); err != nil {
		return "", err
	}
	return key, nil
}

// Retrieve looks up key and applies fn to the stored bytes. A nil fn
// returns the bytes unchanged. A missing key yields (nil, nil); fn is
// not called in that case.
func (c *Cache) Retrieve(ctx context.Context, key string, fn DecodeFunc) (interface{}, error) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	if fn == nil {
		return data, nil
	}
	return fn(data)
}

// RetrieveString returns the value under key as text. found is false for
// a missing key.
func (c *Cache) RetrieveString(ctx context.Context, key string) (value string, found bool, err error) {
	v, err := c.Retrieve(ctx, key, func(data []byte) (interface{}, error) {
		return string(data), nil
	})
	if err != nil || v == nil {
		return "", false, err
	}
	return v.(string), true, nil
}

// RetrieveInt returns the value under key parsed as an integer. found is
// false for a missing key. Fails with ErrBadFormat when the stored bytes
// are not an integer literal.
func (c *Cache) RetrieveInt(ctx context.Context, key string) (value int64, found bool, err error) {
	v, err := c.Retrieve(ctx, key, func(data []byte) (interface{}, error) {
		n, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFormat, data)
		}
		return n, nil
	})
	if err != nil || v == nil {
		return 0, false, err
	}
	return v.(int64), true, nil
}

// RetrieveFloat returns the value under key parsed as a float. found is
// false for a missing key. Fails with ErrBadFormat when the stored bytes
// are not a float literal.
func (c *Cache) RetrieveFloat(ctx context.Context, key string) (value float64, found bool, err error) {
	v, err := c.Retrieve(ctx, key, func(data []byte) (interface{}, error) {
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFormat, data)
		}
		return f, nil
	})
	if err != nil || v == nil {
		return 0, false, err
	}
	return v.(float64), true, nil
}

// History exposes the recorder attached to the store operation.
func (c *Cache) History() *history.Recorder {
	return c.recorder
}

// Close releases the underlying store connection.
func (c *Cache) Close() error {
	return c.store.Close()
}

func encode(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}
