package pick

import (
	"context"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
)

// Repository describes pick persistence needs from use cases. Upsert must be
// atomic on the conflict key: a second write for the same key replaces the
// first row and keeps its creation timestamp.
type Repository interface {
	Upsert(ctx context.Context, item Pick) (Pick, error)
	ListByUserSportWeek(ctx context.Context, userID string, sport game.Sport, week int, groupID *string) ([]Pick, error)
}
