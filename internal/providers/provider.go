package providers

import (
	"context"

	"github.com/preston-bernstein/picks-fixtures-service/internal/domain/fixtures"
)

// ScheduledFixture is a fixture as reported by a schedule provider.
type ScheduledFixture struct {
	LeagueID  int
	League    string
	Country   string
	HomeTeam  string
	AwayTeam  string
	EventDate string
}

// OddsEvent is an event from an odds feed with its head-to-head selections.
// It is cached as JSON, hence the tags.
type OddsEvent struct {
	SportTitle   string               `json:"sportTitle"`
	HomeTeam     string               `json:"homeTeam"`
	AwayTeam     string               `json:"awayTeam"`
	CommenceTime string               `json:"commenceTime"`
	Selections   []fixtures.Selection `json:"selections"`
}

// ScheduleProvider fetches all fixtures for a calendar date (YYYY-MM-DD, provider-local).
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) ([]ScheduledFixture, error)
}

// OddsProvider fetches the events of a single odds feed (a sport or league key).
type OddsProvider interface {
	FetchEvents(ctx context.Context, feedKey string) ([]OddsEvent, error)
}
