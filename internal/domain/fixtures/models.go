package fixtures

// Selection is one bettable outcome on a fixture with its decimal price.
type Selection struct {
	Name string  `json:"name"`
	Odds float64 `json:"odds"`
}

// Fixture is the canonical fixture shape handed to the pick-authoring UI.
// Selections is derived data and may be empty; it is never nil once built by the aggregator.
type Fixture struct {
	League     string      `json:"league"`
	Country    string      `json:"country"`
	HomeTeam   string      `json:"homeTeam"`
	AwayTeam   string      `json:"awayTeam"`
	EventDate  string      `json:"eventDate"`
	Selections []Selection `json:"selections"`
}

// Response is the payload returned by /admin/fixtures.
type Response struct {
	Fixtures  []Fixture `json:"fixtures"`
	Error     string    `json:"error,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

// NewResponse builds a Response, guaranteeing a non-nil fixtures slice.
func NewResponse(fixtures []Fixture) Response {
	if fixtures == nil {
		fixtures = []Fixture{}
	}
	return Response{Fixtures: fixtures}
}

// ErrorResponse builds the soft-failure payload: no fixtures plus an error message.
func ErrorResponse(message string) Response {
	return Response{Fixtures: []Fixture{}, Error: message}
}

// WithSelections returns a copy of f carrying the given selections (never nil).
func (f Fixture) WithSelections(selections []Selection) Fixture {
	if selections == nil {
		selections = []Selection{}
	}
	f.Selections = selections
	return f
}
