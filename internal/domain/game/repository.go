package game

import (
	"context"
	"time"
)

// Repository exposes schedule read operations. Implementations must return
// rows in a stable order so that resolver tie-breaks stay deterministic.
type Repository interface {
	ListBySportWeek(ctx context.Context, sport Sport, week int) ([]Game, error)
	ListByKickoffRange(ctx context.Context, sport Sport, from, to time.Time) ([]Game, error)
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
}
