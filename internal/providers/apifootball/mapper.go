package apifootball

import "github.com/preston-bernstein/picks-fixtures-service/internal/providers"

func mapFixture(f fixtureResponse) providers.ScheduledFixture {
	return providers.ScheduledFixture{
		LeagueID:  f.League.ID,
		League:    f.League.Name,
		Country:   f.League.Country,
		HomeTeam:  f.Teams.Home.Name,
		AwayTeam:  f.Teams.Away.Name,
		EventDate: f.Fixture.Date,
	}
}

func mapFixtures(in []fixtureResponse) []providers.ScheduledFixture {
	out := make([]providers.ScheduledFixture, 0, len(in))
	for _, f := range in {
		out = append(out, mapFixture(f))
	}
	return out
}
