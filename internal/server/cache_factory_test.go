package server

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/preston-bernstein/picks-fixtures-service/internal/config"
)

func TestBuildCacheDefaultsToMemory(t *testing.T) {
	c, closer := buildCache(config.Config{Cache: config.CacheConfig{TTL: 5 * time.Minute}}, nil)
	if closer != nil {
		t.Fatalf("memory backend has nothing to close")
	}
	if c.TTL() != 5*time.Minute {
		t.Fatalf("expected configured ttl, got %s", c.TTL())
	}
	c.Set(context.Background(), "k", json.RawMessage(`1`))
	if _, ok := c.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected working memory cache")
	}
}

func TestBuildCacheFallsBackWhenRedisUnreachable(t *testing.T) {
	cfg := config.Config{Cache: config.CacheConfig{
		Backend:   config.CacheBackendRedis,
		RedisAddr: "127.0.0.1:1",
		TTL:       time.Minute,
	}}
	c, closer := buildCache(cfg, nil)
	if closer != nil {
		t.Fatalf("expected no redis closer after fallback")
	}
	c.Set(context.Background(), "k", json.RawMessage(`1`))
	if _, ok := c.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fallback memory cache to work")
	}
}
