// Package cache memoizes upstream provider payloads for a bounded freshness window.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/preston-bernstein/picks-fixtures-service/internal/logging"
)

// DefaultTTL is the freshness window used when none is configured.
const DefaultTTL = time.Hour

// Entry is a memoized provider payload plus its capture time.
type Entry struct {
	Payload  json.RawMessage `json:"payload"`
	StoredAt time.Time       `json:"storedAt"`
}

// Store is the backing key/value store for cache entries.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
	Delete(ctx context.Context, key string) error
}

// Cache applies a TTL on top of a Store. Expiry is lazy: stale entries are
// dropped when read, there is no background sweep.
type Cache struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// Option customizes a Cache.
type Option func(*Cache)

// WithClock injects the time source used for stamping and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for store failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// New constructs a Cache. A nil store falls back to a MemoryStore and a
// non-positive ttl falls back to DefaultTTL.
func New(store Store, ttl time.Duration, opts ...Option) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{store: store, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the fresh payload for key. Missing, expired and unreadable
// entries are all reported as a miss.
func (c *Cache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	entry, ok, err := c.store.Get(ctx, key)
	if err != nil {
		logging.Warn(c.logger, "cache read failed", slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.StoredAt) >= c.ttl {
		if err := c.store.Delete(ctx, key); err != nil {
			logging.Warn(c.logger, "cache evict failed", slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
		}
		return nil, false
	}
	return entry.Payload, true
}

// Set stores payload under key stamped with the current time.
// Last writer wins; a failed write is logged and otherwise ignored.
func (c *Cache) Set(ctx context.Context, key string, payload json.RawMessage) {
	entry := Entry{Payload: payload, StoredAt: c.now()}
	if err := c.store.Set(ctx, key, entry); err != nil {
		logging.Warn(c.logger, "cache write failed", slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
	}
}

// GetJSON decodes a fresh entry into dest. Undecodable entries count as a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	payload, ok := c.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		logging.Warn(c.logger, "cache decode failed", slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
		return false
	}
	return true
}

// SetJSON encodes v and stores it under key.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		logging.Warn(c.logger, "cache encode failed", slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
		return
	}
	c.Set(ctx, key, payload)
}
