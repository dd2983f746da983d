package store

import (
	"context"
	"fmt"
	"strconv"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/ztrue/tracerr"
	"go.uber.org/zap"
)

const (
	keyPrefix     = "k!"
	listLenPrefix = "l!n!"
	listElPrefix  = "l!e!"
)

// Badger is a Store backed by an embedded badger database. It exists for
// serverless runs and satisfies the same contract as the redis store;
// lists are kept as a length counter plus one entry per element index.
type Badger struct {
	db  *badger.DB
	log *zap.SugaredLogger
}

// NewBadger opens (or creates) a badger database under path.
func NewBadger(path string, log *zap.SugaredLogger) (*Badger, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, tracerr.Errorf("badger open %s: %w", path, err)
	}
	return &Badger{db: db, log: log}, nil
}

func (b *Badger) Ping(ctx context.Context) error {
	if b.db.IsClosed() {
		return tracerr.New("badger store is closed")
	}
	return nil
}

func (b *Badger) Set(ctx context.Context, key string, value string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), []byte(value))
	})
}

func (b *Badger) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *Badger) RPush(ctx context.Context, list string, value string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		length, err := listLen(txn, list)
		if err != nil {
			return err
		}
		if err := txn.Set(elementKey(list, length), []byte(value)); err != nil {
			return err
		}
		return txn.Set([]byte(listLenPrefix+list), []byte(strconv.FormatInt(length+1, 10)))
	})
}

func (b *Badger) LRange(ctx context.Context, list string, start, stop int64) ([]string, error) {
	var out []string
	err := b.db.View(func(txn *badger.Txn) error {
		length, err := listLen(txn, list)
		if err != nil {
			return err
		}
		start, stop := normalizeRange(start, stop, length)
		for i := start; i <= stop; i++ {
			item, err := txn.Get(elementKey(list, i))
			if err != nil {
				return err
			}
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out = append(out, string(data))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Badger) LLen(ctx context.Context, list string) (int64, error) {
	var length int64
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		length, err = listLen(txn, list)
		return err
	})
	return length, err
}

func (b *Badger) FlushDB(ctx context.Context) error {
	return b.db.DropAll()
}

func (b *Badger) Close() error {
	return b.db.Close()
}

func elementKey(list string, index int64) []byte {
	return []byte(fmt.Sprintf("%s%s!%020d", listElPrefix, list, index))
}

func listLen(txn *badger.Txn, list string) (int64, error) {
	item, err := txn.Get([]byte(listLenPrefix + list))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	data, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(string(data), 10, 64)
}

// normalizeRange clamps a redis style start/stop pair (negative counts
// from the tail) to valid element indexes. stop becomes -1 relative when
// the range is empty.
func normalizeRange(start, stop, length int64) (int64, int64) {
	if start < 0 {
		start += length
	}
	if stop < 0 {
		stop += length
	}
	if start < 0 {
		start = 0
	}
	if stop >= length {
		stop = length - 1
	}
	return start, stop
}
