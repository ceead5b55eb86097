package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

type CacheInterface interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	Close() error
}

// Cache is a byte cache whose entries expire after a fixed lifetime.
type Cache struct {
	bigCache *bigcache.BigCache
}

// NewCache creates a cache with the given entry lifetime. Expired entries
// are evicted by bigcache's cleaner, which stops when ctx is done.
func NewCache(ctx context.Context, lifeWindow time.Duration) (*Cache, error) {
	if lifeWindow <= 0 {
		return nil, fmt.Errorf("cache life window must be positive, got %s", lifeWindow)
	}

	config := bigcache.DefaultConfig(lifeWindow)
	config.CleanWindow = lifeWindow
	config.Shards = 16
	config.MaxEntriesInWindow = 64
	config.MaxEntrySize = 64 * 1024
	config.Verbose = false

	bigCache, err := bigcache.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cache{bigCache: bigCache}, nil
}

func (c *Cache) Set(key string, value []byte) error {
	return c.bigCache.Set(key, value)
}

func (c *Cache) Get(key string) ([]byte, error) {
	value, err := c.bigCache.Get(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil, ErrMiss
	}
	return value, err
}

func (c *Cache) Delete(key string) error {
	err := c.bigCache.Delete(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (c *Cache) Close() error {
	return c.bigCache.Close()
}
