package postgres

import (
	"database/sql"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/pick"
)

type pickTableModel struct {
	ID        int64           `db:"id"`
	PublicID  string          `db:"public_id"`
	UserID    string          `db:"user_id"`
	GroupID   sql.NullString  `db:"group_id"`
	GamePubID string          `db:"game_public_id"`
	Sport     string          `db:"sport"`
	Week      int             `db:"week"`
	Market    string          `db:"market"`
	Side      sql.NullString  `db:"side"`
	Line      sql.NullFloat64 `db:"line"`
	Price     sql.NullInt64   `db:"price"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type pickInsertModel struct {
	PublicID  string          `db:"public_id"`
	UserID    string          `db:"user_id"`
	GroupID   sql.NullString  `db:"group_id"`
	GamePubID string          `db:"game_public_id"`
	Sport     string          `db:"sport"`
	Week      int             `db:"week"`
	Market    string          `db:"market"`
	Side      sql.NullString  `db:"side"`
	Line      sql.NullFloat64 `db:"line"`
	Price     sql.NullInt64   `db:"price"`
}

func pickFromRow(row pickTableModel) pick.Pick {
	return pick.Pick{
		ID:        row.PublicID,
		UserID:    row.UserID,
		GroupID:   stringPtr(row.GroupID),
		GameID:    row.GamePubID,
		Sport:     game.Sport(row.Sport),
		Week:      row.Week,
		Market:    pick.Market(row.Market),
		Side:      stringPtr(row.Side),
		Line:      float64Ptr(row.Line),
		Price:     intPtr(row.Price),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}
