// Package ranking orders schedule fixtures so high-profile leagues come first.
package ranking

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultTopLeagueIDs are API-Football league IDs that sort ahead of everything else.
var DefaultTopLeagueIDs = []int{
	39,  // Premier League (England)
	140, // La Liga (Spain)
	135, // Serie A (Italy)
	78,  // Bundesliga (Germany)
	61,  // Ligue 1 (France)
	2,   // Champions League
	3,   // Europa League
	848, // Conference League
	88,  // Eredivisie (Netherlands)
	94,  // Primeira Liga (Portugal)
	203, // Super Lig (Turkey)
	144, // Belgian Pro League
	40,  // Championship (England)
	253, // MLS (USA)
	71,  // Serie A (Brazil)
}

// LeagueInfo is what the ranker needs to know about an item.
type LeagueInfo struct {
	ID      int
	Country string
	Name    string
}

// Ranker sorts items with a two-level comparator: top-tier leagues first,
// then country+league ascending. Ties keep their input order.
type Ranker struct {
	top map[int]struct{}
}

// New builds a Ranker. A nil or empty ids slice falls back to DefaultTopLeagueIDs.
func New(ids []int) *Ranker {
	if len(ids) == 0 {
		ids = DefaultTopLeagueIDs
	}
	top := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		top[id] = struct{}{}
	}
	return &Ranker{top: top}
}

// IsTop reports whether the league ID is in the top-tier set.
func (r *Ranker) IsTop(id int) bool {
	_, ok := r.top[id]
	return ok
}

// Sort orders items in place using info to describe each one.
func Sort[T any](r *Ranker, items []T, info func(T) LeagueInfo) {
	// Collators keep internal buffers, so each sort gets its own.
	col := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := info(items[i]), info(items[j])
		aTop, bTop := r.IsTop(a.ID), r.IsTop(b.ID)
		if aTop != bTop {
			return aTop
		}
		return col.CompareString(sortKey(a), sortKey(b)) < 0
	})
}

func sortKey(l LeagueInfo) string {
	return l.Country + " " + l.Name
}
