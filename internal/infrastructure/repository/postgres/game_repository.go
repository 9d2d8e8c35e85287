package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	qb "github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Upsert(ctx context.Context, item game.Game) error {
	insertModel := gameInsertModel{
		PublicID:  item.ID,
		Sport:     string(item.Sport),
		Week:      item.Week,
		HomeTeam:  item.HomeTeam,
		AwayTeam:  item.AwayTeam,
		KickoffAt: item.KickoffAt.UTC(),
	}

	query, args, err := qb.InsertModel("games", insertModel, `ON CONFLICT (public_id)
DO UPDATE SET
    sport = EXCLUDED.sport,
    week = EXCLUDED.week,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    kickoff_at = EXCLUDED.kickoff_at,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build game upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert game: %w", err)
	}
	return nil
}

func (r *GameRepository) ListBySportWeek(ctx context.Context, sport game.Sport, week int) ([]game.Game, error) {
	query, args, err := gameBaseSelectBuilder().
		Where(
			qb.Eq("sport", string(sport)),
			qb.Eq("week", week),
		).
		OrderBy("kickoff_at ASC", "public_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games by sport and week query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list games by sport and week: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) ListByKickoffRange(ctx context.Context, sport game.Sport, from, to time.Time) ([]game.Game, error) {
	query, args, err := gameBaseSelectBuilder().
		Where(
			qb.Eq("sport", string(sport)),
			qb.Gte("kickoff_at", from.UTC()),
			qb.Lte("kickoff_at", to.UTC()),
		).
		OrderBy("kickoff_at ASC", "public_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games by kickoff range query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list games by kickoff range: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	query, args, err := gameBaseSelectBuilder().
		Where(qb.Eq("public_id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game: %w", err)
	}

	return gameFromRow(row), true, nil
}

func gameBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("games")
}
