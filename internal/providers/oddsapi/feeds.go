package oddsapi

import (
	"strings"

	"github.com/preston-bernstein/picks-fixtures-service/internal/domain/fixtures"
)

// DefaultSoccerFeeds are the top-league soccer feeds, in merge priority order.
var DefaultSoccerFeeds = []string{
	"soccer_epl",
	"soccer_spain_la_liga",
	"soccer_italy_serie_a",
	"soccer_germany_bundesliga",
	"soccer_france_ligue_one",
	"soccer_uefa_champs_league",
	"soccer_uefa_europa_league",
	"soccer_netherlands_eredivisie",
	"soccer_portugal_primeira_liga",
	"soccer_usa_mls",
}

// DefaultSportFeeds maps each non-soccer sport to its single feed.
var DefaultSportFeeds = map[fixtures.Sport]string{
	fixtures.SportNFL:    "americanfootball_nfl",
	fixtures.SportNBA:    "basketball_nba",
	fixtures.SportMLB:    "baseball_mlb",
	fixtures.SportNHL:    "icehockey_nhl",
	fixtures.SportMMA:    "mma_mixed_martial_arts",
	fixtures.SportTennis: "tennis_atp_french_open",
	fixtures.SportBoxing: "boxing_boxing",
}

// Feeds is the resolved feed layout used by the aggregator.
type Feeds struct {
	Soccer []string
	Sports map[fixtures.Sport]string
}

// NewFeeds overlays overrides on the defaults. An empty soccer list keeps the
// default list; sport overrides replace individual entries and unknown sports
// are ignored.
func NewFeeds(soccer []string, sports map[string]string) Feeds {
	f := Feeds{
		Soccer: append([]string(nil), DefaultSoccerFeeds...),
		Sports: make(map[fixtures.Sport]string, len(DefaultSportFeeds)),
	}
	for sport, key := range DefaultSportFeeds {
		f.Sports[sport] = key
	}
	if len(soccer) > 0 {
		f.Soccer = make([]string, 0, len(soccer))
		for _, key := range soccer {
			if key = strings.TrimSpace(key); key != "" {
				f.Soccer = append(f.Soccer, key)
			}
		}
	}
	for raw, key := range sports {
		sport, err := fixtures.ParseSport(raw)
		key = strings.TrimSpace(key)
		if err != nil || sport.UsesSchedule() || key == "" {
			continue
		}
		f.Sports[sport] = key
	}
	return f
}

// ForSport returns the feed for a non-soccer sport.
func (f Feeds) ForSport(sport fixtures.Sport) (string, bool) {
	key, ok := f.Sports[sport]
	return key, ok && key != ""
}
