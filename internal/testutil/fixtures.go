package testutil

import (
	"github.com/preston-bernstein/picks-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
)

// SampleScheduled returns a schedule-provider fixture.
func SampleScheduled(leagueID int, country, league, home, away string) providers.ScheduledFixture {
	return providers.ScheduledFixture{
		LeagueID:  leagueID,
		League:    league,
		Country:   country,
		HomeTeam:  home,
		AwayTeam:  away,
		EventDate: "2024-05-04T14:00:00+00:00",
	}
}

// SampleEvent returns an odds event with home/draw/away prices.
func SampleEvent(title, home, away string, prices ...float64) providers.OddsEvent {
	names := []string{home, away, "Draw"}
	selections := make([]fixtures.Selection, 0, len(prices))
	for i, p := range prices {
		if i >= len(names) {
			break
		}
		selections = append(selections, fixtures.Selection{Name: names[i], Odds: p})
	}
	return providers.OddsEvent{
		SportTitle:   title,
		HomeTeam:     home,
		AwayTeam:     away,
		CommenceTime: "2024-05-04T14:00:00Z",
		Selections:   selections,
	}
}
