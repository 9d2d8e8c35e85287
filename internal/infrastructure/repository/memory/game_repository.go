package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
)

type GameRepository struct {
	mu    sync.RWMutex
	items []game.Game
	byID  map[string]int
}

func NewGameRepository(seed []game.Game) *GameRepository {
	r := &GameRepository{byID: make(map[string]int, len(seed))}
	for _, item := range seed {
		r.items = append(r.items, item)
		r.byID[item.ID] = len(r.items) - 1
	}
	return r
}

func (r *GameRepository) Upsert(_ context.Context, item game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byID[item.ID]; ok {
		r.items[idx] = item
		return nil
	}
	r.items = append(r.items, item)
	r.byID[item.ID] = len(r.items) - 1
	return nil
}

func (r *GameRepository) ListBySportWeek(_ context.Context, sport game.Sport, week int) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, item := range r.items {
		if item.Sport == sport && item.Week == week {
			out = append(out, item)
		}
	}
	sortGames(out)
	return out, nil
}

func (r *GameRepository) ListByKickoffRange(_ context.Context, sport game.Sport, from, to time.Time) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, item := range r.items {
		if item.Sport != sport {
			continue
		}
		if item.KickoffAt.Before(from) || item.KickoffAt.After(to) {
			continue
		}
		out = append(out, item)
	}
	sortGames(out)
	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[gameID]
	if !ok {
		return game.Game{}, false, nil
	}
	return r.items[idx], true, nil
}

// sortGames mirrors the SQL ordering so tie-breaks behave the same against
// either backing store.
func sortGames(items []game.Game) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].KickoffAt.Before(items[j].KickoffAt)
		}
		return items[i].ID < items[j].ID
	})
}
