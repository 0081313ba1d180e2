package server

import (
	"context"
	"io"
	"log/slog"

	"github.com/preston-bernstein/picks-fixtures-service/internal/cache"
	"github.com/preston-bernstein/picks-fixtures-service/internal/config"
	"github.com/preston-bernstein/picks-fixtures-service/internal/logging"
)

const redisKeyPrefix = "picks-fixtures"

// buildCache picks the configured backend. An unreachable Redis falls back to
// process memory so the service still starts.
func buildCache(cfg config.Config, logger *slog.Logger) (*cache.Cache, io.Closer) {
	opts := []cache.Option{cache.WithLogger(logger)}
	if cfg.Cache.Backend != config.CacheBackendRedis {
		return cache.New(cache.NewMemoryStore(), cfg.Cache.TTL, opts...), nil
	}

	store, err := cache.NewRedisStore(cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
		Prefix:   redisKeyPrefix,
		Expiry:   2 * cfg.Cache.TTL,
	})
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err = store.Ping(ctx)
		cancel()
		if err != nil {
			_ = store.Close()
		}
	}
	if err != nil {
		logging.Warn(logger, "redis cache unavailable, using memory",
			slog.String("addr", cfg.Cache.RedisAddr),
			slog.Any("error", err),
		)
		return cache.New(cache.NewMemoryStore(), cfg.Cache.TTL, opts...), nil
	}
	logging.Info(logger, "redis cache connected", slog.String("addr", cfg.Cache.RedisAddr))
	return cache.New(store, cfg.Cache.TTL, opts...), store
}
