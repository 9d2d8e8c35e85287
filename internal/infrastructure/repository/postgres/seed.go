package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo slate into an empty database so a fresh
// environment has a schedule to pick against.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM games`); err != nil {
		return fmt.Errorf("count games for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, g := range memory.SeedGames() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO games (public_id, sport, week, home_team, away_team, kickoff_at)
VALUES (:public_id, :sport, :week, :home_team, :away_team, :kickoff_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  g.ID,
			"sport":      string(g.Sport),
			"week":       g.Week,
			"home_team":  g.HomeTeam,
			"away_team":  g.AwayTeam,
			"kickoff_at": g.KickoffAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("bind seed game %s query: %w", g.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed game %s: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap seed: %w", err)
	}
	return nil
}
