package fixtures

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFixtureEncodesEmptySelectionsAsArray(t *testing.T) {
	f := Fixture{League: "Premier League", HomeTeam: "Arsenal", AwayTeam: "Chelsea"}.WithSelections(nil)
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"selections":[]`) {
		t.Fatalf("expected empty selections array, got %s", raw)
	}
}

func TestErrorResponseHasEmptyFixtures(t *testing.T) {
	raw, err := json.Marshal(ErrorResponse("fetch failed"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"fixtures":[]`) || !strings.Contains(string(raw), `"error":"fetch failed"`) {
		t.Fatalf("unexpected payload %s", raw)
	}
}

func TestNewResponseNeverNil(t *testing.T) {
	if NewResponse(nil).Fixtures == nil {
		t.Fatalf("expected non-nil fixtures")
	}
}

func TestParseSport(t *testing.T) {
	cases := []struct {
		raw     string
		want    Sport
		wantErr bool
	}{
		{"", SportSoccer, false},
		{"soccer", SportSoccer, false},
		{" NBA ", SportNBA, false},
		{"boxing", SportBoxing, false},
		{"curling", "", true},
	}
	for _, tc := range cases {
		got, err := ParseSport(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrUnsupportedSport) {
				t.Fatalf("%q: expected ErrUnsupportedSport, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%q: expected %s, got %s (%v)", tc.raw, tc.want, got, err)
		}
	}
}

func TestOnlySoccerUsesSchedule(t *testing.T) {
	if !SportSoccer.UsesSchedule() {
		t.Fatalf("expected soccer to use schedule provider")
	}
	if SportNBA.UsesSchedule() {
		t.Fatalf("expected nba to use odds feed")
	}
}
