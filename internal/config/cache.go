package config

// Supported cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig controls odds-feed caching.
type CacheConfig struct {
	TTL           Duration
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func loadCache() CacheConfig {
	backend := envOrDefault(envCacheBackend, defaultCacheBackend)
	if backend != CacheBackendRedis {
		backend = CacheBackendMemory
	}
	return CacheConfig{
		TTL:           durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		Backend:       backend,
		RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       intEnvOrDefault(envRedisDB, 0),
	}
}
