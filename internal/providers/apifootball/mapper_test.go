package apifootball

import "testing"

func TestMapFixturesKeepsEmptySliceNonNil(t *testing.T) {
	if got := mapFixtures(nil); got == nil {
		t.Fatalf("expected non-nil slice")
	}
}

func TestHasErrors(t *testing.T) {
	cases := []struct {
		raw      string
		expected bool
	}{
		{"", false},
		{"null", false},
		{"[]", false},
		{"{}", false},
		{` { } `, false},
		{`"quota exceeded"`, true},
		{`{"requests":"limit reached"}`, true},
		{`["bad"]`, true},
	}
	for _, c := range cases {
		r := fixturesResponse{Errors: []byte(c.raw)}
		if got := r.hasErrors(); got != c.expected {
			t.Fatalf("hasErrors(%q) = %v, want %v", c.raw, got, c.expected)
		}
	}
}
