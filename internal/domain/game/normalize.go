package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTeamName flattens a team name into the comparable form used when
// matching odds-feed events against schedule rows. The same function must be
// applied to both sides of a comparison. It is idempotent.
//
// Steps: lowercase, strip diacritics, "&" -> "and", hyphens and whitespace
// runs -> single space, drop periods, trim. College schedules additionally
// fold the "St." suffix feeds use for "State".
func NormalizeTeamName(sport Sport, name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = stripDiacritics(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")

	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if sport == SportCFB && field == "st." {
			field = "state"
		}
		field = strings.ReplaceAll(field, ".", "")
		if field == "" {
			continue
		}
		out = append(out, field)
	}

	return strings.Join(out, " ")
}

func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	runes := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		runes = append(runes, r)
	}

	return norm.NFC.String(string(runes))
}
