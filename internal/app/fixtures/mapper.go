package fixtures

import (
	domainfixtures "github.com/preston-bernstein/picks-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/picks-fixtures-service/internal/matching"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
	"github.com/preston-bernstein/picks-fixtures-service/internal/ranking"
)

func matchKey(home, away string) (string, bool) {
	return matching.FixtureKey(home, away)
}

func leagueInfo(f providers.ScheduledFixture) ranking.LeagueInfo {
	return ranking.LeagueInfo{ID: f.LeagueID, Country: f.Country, Name: f.League}
}

func fromSchedule(f providers.ScheduledFixture) domainfixtures.Fixture {
	return domainfixtures.Fixture{
		League:    f.League,
		Country:   f.Country,
		HomeTeam:  f.HomeTeam,
		AwayTeam:  f.AwayTeam,
		EventDate: f.EventDate,
	}
}

// fromEvent maps an odds-feed event straight to a fixture; feeds carry no country.
func fromEvent(e providers.OddsEvent) domainfixtures.Fixture {
	return domainfixtures.Fixture{
		League:    e.SportTitle,
		Country:   "",
		HomeTeam:  e.HomeTeam,
		AwayTeam:  e.AwayTeam,
		EventDate: e.CommenceTime,
	}.WithSelections(e.Selections)
}
