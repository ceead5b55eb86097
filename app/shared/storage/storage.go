package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrNotFound is returned by Get when the key is unknown or expired.
var ErrNotFound = errors.New("item not found or expired")

// Store defines the behavior of a keyed in-memory store.
type Store[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
	Delete(ctx context.Context, key string)
	Len() int
}

// item holds the data and the expiration timestamp.
// expiryTime == 0 means the item never expires.
type item[T any] struct {
	value      T
	expiryTime int64
}

// MemoryStore keeps values in a map guarded by an RWMutex.
type MemoryStore[T any] struct {
	store map[string]item[T]
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewMemoryStore creates a store. A ttl <= 0 keeps items for the lifetime
// of the process and no janitor is started.
func NewMemoryStore[T any](ctx context.Context, ttl time.Duration) *MemoryStore[T] {
	ms := &MemoryStore[T]{
		store: make(map[string]item[T]),
		ttl:   ttl,
	}
	if ttl > 0 {
		interval := time.Minute
		if ttl < interval {
			interval = ttl
		}
		go ms.startJanitor(ctx, interval)
	}
	return ms
}

func (ms *MemoryStore[T]) Set(ctx context.Context, key string, value T) error {
	if key == "" {
		return errors.New("key is empty")
	}

	var expiry int64
	if ms.ttl > 0 {
		expiry = time.Now().Add(ms.ttl).UnixNano()
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.store[key] = item[T]{value: value, expiryTime: expiry}

	slog.DebugContext(ctx, "MemoryStore: stored item", slog.String("key", key))
	return nil
}

func (ms *MemoryStore[T]) Get(ctx context.Context, key string) (T, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	it, exists := ms.store[key]
	if !exists || it.expired(time.Now().UnixNano()) {
		var zero T
		return zero, ErrNotFound
	}
	return it.value, nil
}

func (ms *MemoryStore[T]) Delete(ctx context.Context, key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.store, key)
}

// Len returns the number of stored items, expired ones included until the
// janitor removes them.
func (ms *MemoryStore[T]) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.store)
}

func (it item[T]) expired(now int64) bool {
	return it.expiryTime != 0 && now > it.expiryTime
}

// startJanitor removes expired keys at a fixed interval until ctx is done.
func (ms *MemoryStore[T]) startJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ms.performCleanup()
		}
	}
}

func (ms *MemoryStore[T]) performCleanup() {
	now := time.Now().UnixNano()

	ms.mu.Lock()
	defer ms.mu.Unlock()

	initialSize := len(ms.store)
	for key, it := range ms.store {
		if it.expired(now) {
			delete(ms.store, key)
		}
	}

	if removed := initialSize - len(ms.store); removed > 0 {
		slog.Debug("MemoryStore: cleanup complete",
			slog.Int("removed_count", removed),
			slog.Int("remaining_count", len(ms.store)))
	}
}
