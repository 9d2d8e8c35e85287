package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/pick"
	qb "github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/querybuilder"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

// Upsert targets one of two partial unique indexes: solo picks conflict on
// (user_id, game_public_id), group picks on (user_id, group_id,
// game_public_id). The DO UPDATE branch keeps public_id and created_at from
// the original row.
func (r *PickRepository) Upsert(ctx context.Context, item pick.Pick) (pick.Pick, error) {
	insertModel := pickInsertModel{
		PublicID:  item.ID,
		UserID:    item.UserID,
		GroupID:   nullString(item.GroupID),
		GamePubID: item.GameID,
		Sport:     string(item.Sport),
		Week:      item.Week,
		Market:    string(item.Market),
		Side:      nullString(item.Side),
		Line:      nullFloat64(item.Line),
		Price:     nullInt64(item.Price),
	}

	conflict := `ON CONFLICT (user_id, game_public_id) WHERE group_id IS NULL`
	if item.Grouped() {
		conflict = `ON CONFLICT (user_id, group_id, game_public_id) WHERE group_id IS NOT NULL`
	}

	query, args, err := qb.InsertModel("picks", insertModel, conflict+`
DO UPDATE SET
    sport = EXCLUDED.sport,
    week = EXCLUDED.week,
    market = EXCLUDED.market,
    side = EXCLUDED.side,
    line = EXCLUDED.line,
    price = EXCLUDED.price,
    updated_at = NOW()
RETURNING public_id, created_at, updated_at`)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("build pick upsert query: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("upsert pick: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return pick.Pick{}, fmt.Errorf("upsert pick: %w", err)
		}
		return pick.Pick{}, fmt.Errorf("upsert pick: no row returned")
	}

	var (
		publicID  string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := rows.Scan(&publicID, &createdAt, &updatedAt); err != nil {
		return pick.Pick{}, fmt.Errorf("scan pick upsert result: %w", err)
	}

	saved := item
	saved.ID = publicID
	saved.CreatedAt = createdAt.UTC()
	saved.UpdatedAt = updatedAt.UTC()
	return saved, nil
}

func (r *PickRepository) ListByUserSportWeek(ctx context.Context, userID string, sport game.Sport, week int, groupID *string) ([]pick.Pick, error) {
	builder := qb.Select("*").From("picks").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("sport", string(sport)),
			qb.Eq("week", week),
		)
	if groupID == nil {
		builder = builder.Where(qb.IsNull("group_id"))
	} else {
		builder = builder.Where(qb.Eq("group_id", *groupID))
	}

	query, args, err := builder.
		OrderBy("created_at ASC", "public_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks by user: %w", err)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}
	return out, nil
}
