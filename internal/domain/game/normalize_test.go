package game

import "testing"

func TestNormalizeTeamName(t *testing.T) {
	cases := []struct {
		name  string
		sport Sport
		in    string
		want  string
	}{
		{"lowercase and trim", SportNFL, "  Philadelphia Eagles ", "philadelphia eagles"},
		{"diacritics", SportCFB, "San José State Spartans", "san jose state spartans"},
		{"ampersand", SportCFB, "William & Mary Tribe", "william and mary tribe"},
		{"hyphens", SportCFB, "Texas A&M-Commerce", "texas a and m commerce"},
		{"periods", SportNFL, "St. Louis Rams", "st louis rams"},
		{"cfb st dot folds to state", SportCFB, "Ohio St. Buckeyes", "ohio state buckeyes"},
		{"nfl st dot stays st", SportNFL, "Ohio St. Buckeyes", "ohio st buckeyes"},
		{"whitespace runs", SportNFL, "Green  Bay   Packers", "green bay packers"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTeamName(tc.sport, tc.in)
			if got != tc.want {
				t.Fatalf("normalize %q: got %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeTeamName_Idempotent(t *testing.T) {
	inputs := []string{
		"Hawai'i Rainbow Warriors",
		"Miami (OH) RedHawks",
		"Ohio St. Buckeyes",
		"Texas A&M Aggies",
		"São Paulo",
	}

	for _, in := range inputs {
		for _, sport := range Sports() {
			once := NormalizeTeamName(sport, in)
			twice := NormalizeTeamName(sport, once)
			if once != twice {
				t.Fatalf("normalize not idempotent for %q (%s): %q != %q", in, sport, once, twice)
			}
		}
	}
}

func TestParseSport(t *testing.T) {
	if s, err := ParseSport(" NFL "); err != nil || s != SportNFL {
		t.Fatalf("parse nfl: got %q, %v", s, err)
	}
	if s, err := ParseSport("cfb"); err != nil || s != SportCFB {
		t.Fatalf("parse cfb: got %q, %v", s, err)
	}
	if _, err := ParseSport("nba"); err == nil {
		t.Fatalf("expected error for unknown sport")
	}
}
