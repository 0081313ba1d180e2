package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LeagueCatalog overrides which upstream feeds and leagues the aggregator uses.
// Empty fields mean "use the built-in defaults".
type LeagueCatalog struct {
	// SoccerFeeds are odds-provider feed keys queried to enrich soccer fixtures, in priority order.
	SoccerFeeds []string `toml:"soccer_feeds"`
	// TopLeagueIDs are schedule-provider league IDs ranked ahead of all others.
	TopLeagueIDs []int `toml:"top_league_ids"`
	// SportFeeds maps a sport to its odds-provider feed key.
	SportFeeds map[string]string `toml:"sport_feeds"`
}

// LoadLeagueCatalog decodes a TOML league catalog from path.
func LoadLeagueCatalog(path string) (LeagueCatalog, error) {
	var catalog LeagueCatalog
	meta, err := toml.DecodeFile(path, &catalog)
	if err != nil {
		return LeagueCatalog{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return LeagueCatalog{}, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	return catalog, nil
}
