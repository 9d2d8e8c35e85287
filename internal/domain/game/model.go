package game

import (
	"fmt"
	"strings"
	"time"
)

// Sport identifies one of the supported football schedules.
type Sport string

const (
	SportNFL Sport = "nfl"
	SportCFB Sport = "cfb"
)

func ParseSport(value string) (Sport, error) {
	switch Sport(strings.ToLower(strings.TrimSpace(value))) {
	case SportNFL:
		return SportNFL, nil
	case SportCFB:
		return SportCFB, nil
	default:
		return "", fmt.Errorf("unknown sport %q: valid values are %s, %s", value, SportNFL, SportCFB)
	}
}

func Sports() []Sport {
	return []Sport{SportNFL, SportCFB}
}

// Game is one scheduled matchup in the internal schedule. Rows are owned by
// the schedule importer; this service only reads them.
type Game struct {
	ID        string
	Sport     Sport
	Week      int
	HomeTeam  string
	AwayTeam  string
	KickoffAt time.Time
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if _, err := ParseSport(string(g.Sport)); err != nil {
		return err
	}
	if g.Week < 1 {
		return fmt.Errorf("game week must be >= 1")
	}
	if g.HomeTeam == "" || g.AwayTeam == "" {
		return fmt.Errorf("game team names are required")
	}
	if g.KickoffAt.IsZero() {
		return fmt.Errorf("game kickoff time is required")
	}

	return nil
}
