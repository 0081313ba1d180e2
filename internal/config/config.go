package config

import "fmt"

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	UpstreamTimeout Duration
	APIFootball     APIFootballConfig
	OddsAPI         OddsAPIConfig
	Leagues         LeagueCatalog
	Cache           CacheConfig
	Admin           AdminConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// When LEAGUES_FILE is set, the league catalog is overlaid from that TOML file.
func Load() (Config, error) {
	cfg := Config{
		Port:            envOrDefault(envPort, defaultPort),
		UpstreamTimeout: durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		APIFootball:     loadAPIFootball(),
		OddsAPI:         loadOddsAPI(),
		Cache:           loadCache(),
		Admin:           loadAdmin(),
		Metrics:         loadMetrics(),
	}

	if path := envOrDefault(envLeaguesFile, ""); path != "" {
		catalog, err := LoadLeagueCatalog(path)
		if err != nil {
			return cfg, fmt.Errorf("load league catalog: %w", err)
		}
		cfg.Leagues = catalog
	}
	return cfg, nil
}
