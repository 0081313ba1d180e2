package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.UpstreamTimeout != defaultUpstreamTimeout {
		t.Fatalf("expected default upstream timeout %s, got %s", defaultUpstreamTimeout, cfg.UpstreamTimeout)
	}
	if cfg.APIFootball.BaseURL != defaultAPIFootballURL {
		t.Fatalf("expected default api-football url, got %s", cfg.APIFootball.BaseURL)
	}
	if cfg.APIFootball.APIKey != "" || cfg.OddsAPI.APIKey != "" {
		t.Fatalf("expected empty api keys by default")
	}
	if cfg.OddsAPI.Regions != defaultOddsAPIRegions {
		t.Fatalf("expected default regions %s, got %s", defaultOddsAPIRegions, cfg.OddsAPI.Regions)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Fatalf("expected 1h cache ttl, got %s", cfg.Cache.TTL)
	}
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Fatalf("expected memory cache backend, got %s", cfg.Cache.Backend)
	}
	if cfg.Admin.Token != "" || len(cfg.Admin.UserIDs) != 0 {
		t.Fatalf("expected no admin credentials by default, got %+v", cfg.Admin)
	}
	if len(cfg.Leagues.SoccerFeeds) != 0 || len(cfg.Leagues.TopLeagueIDs) != 0 {
		t.Fatalf("expected empty league overlay by default, got %+v", cfg.Leagues)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envUpstreamTimeout, "3s")
	t.Setenv(envAPIFootballKey, "football-key")
	t.Setenv(envAPIFootballURL, "http://football.local")
	t.Setenv(envOddsAPIKey, "odds-key")
	t.Setenv(envOddsAPIRegions, "eu")
	t.Setenv(envCacheTTL, "30m")
	t.Setenv(envCacheBackend, "redis")
	t.Setenv(envRedisAddr, "redis:6379")
	t.Setenv(envRedisDB, "2")
	t.Setenv(envAdminToken, "secret")
	t.Setenv(envAdminUserIDs, "user_1, user_2 ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.UpstreamTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.UpstreamTimeout)
	}
	if cfg.APIFootball.APIKey != "football-key" || cfg.APIFootball.BaseURL != "http://football.local" {
		t.Fatalf("unexpected api-football config %+v", cfg.APIFootball)
	}
	if cfg.OddsAPI.APIKey != "odds-key" || cfg.OddsAPI.Regions != "eu" {
		t.Fatalf("unexpected odds api config %+v", cfg.OddsAPI)
	}
	if cfg.Cache.TTL != 30*time.Minute || cfg.Cache.Backend != CacheBackendRedis {
		t.Fatalf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Cache.RedisAddr != "redis:6379" || cfg.Cache.RedisDB != 2 {
		t.Fatalf("unexpected redis config %+v", cfg.Cache)
	}
	if cfg.Admin.Token != "secret" {
		t.Fatalf("expected admin token override")
	}
	if len(cfg.Admin.UserIDs) != 2 || cfg.Admin.UserIDs[0] != "user_1" || cfg.Admin.UserIDs[1] != "user_2" {
		t.Fatalf("unexpected admin user ids %v", cfg.Admin.UserIDs)
	}
}

func TestLoadUnknownCacheBackendFallsBackToMemory(t *testing.T) {
	t.Setenv(envCacheBackend, "memcached")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Fatalf("expected memory fallback, got %s", cfg.Cache.Backend)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envCacheTTL, "not-a-duration")
	t.Setenv(envUpstreamTimeout, "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cache.TTL != defaultCacheTTL {
		t.Fatalf("expected default ttl on invalid value, got %s", cfg.Cache.TTL)
	}
	if cfg.UpstreamTimeout != defaultUpstreamTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.UpstreamTimeout)
	}
}

func TestLoadLeagueCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.toml")
	content := `
soccer_feeds = ["soccer_epl", "soccer_spain_la_liga"]
top_league_ids = [39, 140]

[sport_feeds]
tennis = "tennis_atp_wimbledon"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(envLeaguesFile, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Leagues.SoccerFeeds) != 2 || cfg.Leagues.SoccerFeeds[0] != "soccer_epl" {
		t.Fatalf("unexpected soccer feeds %v", cfg.Leagues.SoccerFeeds)
	}
	if len(cfg.Leagues.TopLeagueIDs) != 2 || cfg.Leagues.TopLeagueIDs[1] != 140 {
		t.Fatalf("unexpected top league ids %v", cfg.Leagues.TopLeagueIDs)
	}
	if cfg.Leagues.SportFeeds["tennis"] != "tennis_atp_wimbledon" {
		t.Fatalf("unexpected sport feeds %v", cfg.Leagues.SportFeeds)
	}
}

func TestLoadLeagueCatalogRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.toml")
	if err := os.WriteFile(path, []byte(`soccer_feed = ["typo"]`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadLeagueCatalog(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadMissingLeagueFileErrors(t *testing.T) {
	t.Setenv(envLeaguesFile, filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing league file")
	}
}
