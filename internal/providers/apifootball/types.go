package apifootball

import (
	"bytes"
	"encoding/json"
)

const providerName = "apifootball"

type fixturesResponse struct {
	// Errors is [] when clean and an object keyed by field when the API rejects the call.
	Errors   json.RawMessage   `json:"errors"`
	Results  int               `json:"results"`
	Response []fixtureResponse `json:"response"`
}

type fixtureResponse struct {
	Fixture fixtureInfo   `json:"fixture"`
	League  leagueInfo    `json:"league"`
	Teams   teamsResponse `json:"teams"`
}

type fixtureInfo struct {
	ID   int    `json:"id"`
	Date string `json:"date"`
}

type leagueInfo struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type teamsResponse struct {
	Home teamResponse `json:"home"`
	Away teamResponse `json:"away"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// hasErrors reports whether the API returned a non-empty errors payload.
func (r fixturesResponse) hasErrors() bool {
	if len(bytes.TrimSpace(r.Errors)) == 0 {
		return false
	}
	var decoded any
	if err := json.Unmarshal(r.Errors, &decoded); err != nil {
		return true
	}
	switch v := decoded.(type) {
	case nil:
		return false
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case string:
		return v != ""
	default:
		return true
	}
}
