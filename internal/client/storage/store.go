// Package storage holds the local key-value store that keeps the session
// between runs. All backends store plain strings and are safe for concurrent
// use within one process.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountcli/internal/client/config"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// Store is the persistence contract the session code depends on.
//
// Get reports ok=false for a missing key. Remove is idempotent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

// Open builds the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		s, err := OpenSQLite(ctx, cfg.StorePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverRedis:
		s, err := DialRedis(ctx, cfg.RedisAddr, DefaultRedisPrefix)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StoreDriver)
	}
}
