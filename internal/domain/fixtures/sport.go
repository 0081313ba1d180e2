package fixtures

import (
	"errors"
	"strings"
)

// Sport identifies a supported sport.
type Sport string

const (
	SportSoccer Sport = "soccer"
	SportNFL    Sport = "nfl"
	SportNBA    Sport = "nba"
	SportMLB    Sport = "mlb"
	SportNHL    Sport = "nhl"
	SportMMA    Sport = "mma"
	SportTennis Sport = "tennis"
	SportBoxing Sport = "boxing"
)

// DefaultSport is used when a request omits the sport.
const DefaultSport = SportSoccer

// ErrUnsupportedSport is returned for sports outside the supported set.
var ErrUnsupportedSport = errors.New("unsupported sport")

var supportedSports = map[Sport]struct{}{
	SportSoccer: {},
	SportNFL:    {},
	SportNBA:    {},
	SportMLB:    {},
	SportNHL:    {},
	SportMMA:    {},
	SportTennis: {},
	SportBoxing: {},
}

// ParseSport lower-cases and validates a raw sport value.
func ParseSport(raw string) (Sport, error) {
	s := Sport(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return DefaultSport, nil
	}
	if _, ok := supportedSports[s]; !ok {
		return "", ErrUnsupportedSport
	}
	return s, nil
}

// UsesSchedule reports whether the sport is served by the schedule provider
// (with odds joined in) rather than straight from an odds feed.
func (s Sport) UsesSchedule() bool {
	return s == SportSoccer
}
