package config

import "time"

const (
	envPort            = "PORT"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envAPIFootballKey  = "API_FOOTBALL_KEY"
	envAPIFootballURL  = "API_FOOTBALL_BASE_URL"
	envOddsAPIKey      = "ODDS_API_KEY"
	envOddsAPIURL      = "ODDS_API_BASE_URL"
	envOddsAPIRegions  = "ODDS_API_REGIONS"
	envCacheTTL        = "ODDS_CACHE_TTL"
	envCacheBackend    = "CACHE_BACKEND"
	envRedisAddr       = "REDIS_ADDR"
	envRedisPassword   = "REDIS_PASSWORD"
	envRedisDB         = "REDIS_DB"
	envAdminToken      = "ADMIN_TOKEN"
	envAdminUserIDs    = "ADMIN_USER_IDS"
	envLeaguesFile     = "LEAGUES_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Bounds each upstream call.
	defaultUpstreamTimeout = 10 * Duration(time.Second)
	defaultAPIFootballURL  = "https://v3.football.api-sports.io"
	defaultOddsAPIURL      = "https://api.the-odds-api.com"
	defaultOddsAPIRegions  = "uk"
	defaultCacheTTL        = Duration(time.Hour)
	defaultCacheBackend    = CacheBackendMemory
	defaultRedisAddr       = "localhost:6379"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "picks-fixtures-service"
)
