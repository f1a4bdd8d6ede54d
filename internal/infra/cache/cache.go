package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache is a generic TTL cache.
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error)
}

type Config struct {
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

func DefaultConfig() *Config {
	return &Config{
		MaxCost:     1 << 26, // 64MB
		NumCounters: 1e5,
		BufferItems: 64,
	}
}

var _ Cache = (*RistrettoCache)(nil)

// RistrettoCache backs the Cache interface with Ristretto and collapses
// concurrent loads of the same key through singleflight.
type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
}

func New(config *Config) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	store.Wait()

	return &RistrettoCache{store: store}, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	default:
	}
	return c.store.Get(key)
}

func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	ok := c.store.SetWithTTL(key, value, 1, ttl)
	c.store.Wait()
	return ok
}

func (c *RistrettoCache) Delete(ctx context.Context, key string) {
	c.store.Del(key)
}

// GetOrSet returns the cached value for key, loading and storing it on a
// miss. Concurrent callers missing on the same key share a single load.
func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}
		c.Set(ctx, key, value, ttl)
		return value, nil
	})

	return value, err
}
