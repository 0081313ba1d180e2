package oddsapi

import "time"

const (
	providerName       = "oddsapi"
	defaultBaseURL     = "https://api.the-odds-api.com"
	defaultHTTPTimeout = 10 * time.Second
	defaultRegions     = "uk"
	apiKeySetting      = "ODDS_API_KEY"

	marketHeadToHead = "h2h"
	oddsFormat       = "decimal"
	dateFormat       = "iso"

	headerRequestsRemaining = "x-requests-remaining"
)
