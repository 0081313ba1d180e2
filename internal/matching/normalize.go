// Package matching joins team names across providers that do not share an ID space.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// organisationalTokens are club-name affixes that providers include inconsistently.
// Words that carry identity ("united", "city", "real") are not listed.
var organisationalTokens = map[string]struct{}{
	"fc": {}, "sc": {}, "ac": {}, "afc": {}, "cf": {}, "cd": {},
	"sv": {}, "fk": {}, "sk": {}, "bk": {}, "if": {}, "ssc": {},
	"as": {}, "us": {}, "ss": {}, "rc": {}, "rcd": {}, "vfb": {},
	"vfl": {}, "tsg": {}, "bsc": {}, "ca": {}, "club": {}, "de": {},
}

const keySeparator = "|"

// NormalizeTeam maps a raw team name to its join key. Two names refer to the
// same team iff their normalized forms are equal.
func NormalizeTeam(name string) string {
	folded := foldDiacritics(strings.ToLower(name))
	lettersOnly := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return ' '
	}, folded)

	words := strings.Fields(lettersOnly)
	kept := words[:0]
	for _, w := range words {
		if _, drop := organisationalTokens[w]; drop {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// FixtureKey is the order-sensitive join key for a fixture: home first.
// ok is false when either side normalizes to nothing; such names never join.
func FixtureKey(home, away string) (key string, ok bool) {
	h, a := NormalizeTeam(home), NormalizeTeam(away)
	if h == "" || a == "" {
		return "", false
	}
	return h + keySeparator + a, true
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
