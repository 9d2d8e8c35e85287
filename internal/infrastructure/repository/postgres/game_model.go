package postgres

import (
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
)

type gameTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Sport     string    `db:"sport"`
	Week      int       `db:"week"`
	HomeTeam  string    `db:"home_team"`
	AwayTeam  string    `db:"away_team"`
	KickoffAt time.Time `db:"kickoff_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type gameInsertModel struct {
	PublicID  string    `db:"public_id"`
	Sport     string    `db:"sport"`
	Week      int       `db:"week"`
	HomeTeam  string    `db:"home_team"`
	AwayTeam  string    `db:"away_team"`
	KickoffAt time.Time `db:"kickoff_at"`
}

func gameFromRow(row gameTableModel) game.Game {
	return game.Game{
		ID:        row.PublicID,
		Sport:     game.Sport(row.Sport),
		Week:      row.Week,
		HomeTeam:  row.HomeTeam,
		AwayTeam:  row.AwayTeam,
		KickoffAt: row.KickoffAt.UTC(),
	}
}
