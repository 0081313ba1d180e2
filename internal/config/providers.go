package config

// APIFootballConfig controls how we talk to the API-Football schedule API.
type APIFootballConfig struct {
	BaseURL string
	APIKey  string
}

// OddsAPIConfig controls how we talk to The Odds API.
type OddsAPIConfig struct {
	BaseURL string
	APIKey  string
	Regions string
}

func loadAPIFootball() APIFootballConfig {
	return APIFootballConfig{
		BaseURL: envOrDefault(envAPIFootballURL, defaultAPIFootballURL),
		APIKey:  envOrDefault(envAPIFootballKey, ""),
	}
}

func loadOddsAPI() OddsAPIConfig {
	return OddsAPIConfig{
		BaseURL: envOrDefault(envOddsAPIURL, defaultOddsAPIURL),
		APIKey:  envOrDefault(envOddsAPIKey, ""),
		Regions: envOrDefault(envOddsAPIRegions, defaultOddsAPIRegions),
	}
}
