package memory

import (
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
)

const (
	GameIDChiefsChargers = "nfl-2025-w1-kc-lac"
	GameIDEaglesCowboys  = "nfl-2025-w1-phi-dal"
	GameIDBillsRavens    = "nfl-2025-w2-buf-bal"
	GameIDBuckeyesLongh  = "cfb-2025-w1-osu-tex"
	GameIDSpartansAggies = "cfb-2025-w2-sjsu-tam"
)

// SeedGames returns a small slate spanning both sports across the opening
// weeks of the 2025 season.
func SeedGames() []game.Game {
	return []game.Game{
		{
			ID:        GameIDChiefsChargers,
			Sport:     game.SportNFL,
			Week:      1,
			HomeTeam:  "Kansas City Chiefs",
			AwayTeam:  "Los Angeles Chargers",
			KickoffAt: time.Date(2025, 9, 5, 0, 15, 0, 0, time.UTC),
		},
		{
			ID:        GameIDEaglesCowboys,
			Sport:     game.SportNFL,
			Week:      1,
			HomeTeam:  "Philadelphia Eagles",
			AwayTeam:  "Dallas Cowboys",
			KickoffAt: time.Date(2025, 9, 5, 0, 20, 0, 0, time.UTC),
		},
		{
			ID:        GameIDBillsRavens,
			Sport:     game.SportNFL,
			Week:      2,
			HomeTeam:  "Buffalo Bills",
			AwayTeam:  "Baltimore Ravens",
			KickoffAt: time.Date(2025, 9, 12, 0, 20, 0, 0, time.UTC),
		},
		{
			ID:        GameIDBuckeyesLongh,
			Sport:     game.SportCFB,
			Week:      1,
			HomeTeam:  "Ohio State",
			AwayTeam:  "Texas",
			KickoffAt: time.Date(2025, 8, 30, 16, 0, 0, 0, time.UTC),
		},
		{
			ID:        GameIDSpartansAggies,
			Sport:     game.SportCFB,
			Week:      2,
			HomeTeam:  "San José State",
			AwayTeam:  "Texas A&M",
			KickoffAt: time.Date(2025, 9, 6, 23, 0, 0, 0, time.UTC),
		},
	}
}
