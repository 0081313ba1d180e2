package oddsapi

import (
	"github.com/preston-bernstein/picks-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
)

// headToHead returns the outcomes of the first bookmaker offering an h2h market.
// Bookmaker and outcome order are the provider's; no prices are compared.
func headToHead(bookmakers []bookmakerPayload) []fixtures.Selection {
	for _, b := range bookmakers {
		for _, m := range b.Markets {
			if m.Key != marketHeadToHead {
				continue
			}
			out := make([]fixtures.Selection, 0, len(m.Outcomes))
			for _, o := range m.Outcomes {
				out = append(out, fixtures.Selection{Name: o.Name, Odds: o.Price})
			}
			return out
		}
	}
	return []fixtures.Selection{}
}

func mapEvent(e eventResponse) providers.OddsEvent {
	return providers.OddsEvent{
		SportTitle:   e.SportTitle,
		HomeTeam:     e.HomeTeam,
		AwayTeam:     e.AwayTeam,
		CommenceTime: e.CommenceTime,
		Selections:   headToHead(e.Bookmakers),
	}
}

func mapEvents(in []eventResponse) []providers.OddsEvent {
	out := make([]providers.OddsEvent, 0, len(in))
	for _, e := range in {
		out = append(out, mapEvent(e))
	}
	return out
}
