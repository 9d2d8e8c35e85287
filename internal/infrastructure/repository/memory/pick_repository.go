package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/pick"
)

type PickRepository struct {
	mu    sync.RWMutex
	items map[string]pick.Pick
}

func NewPickRepository() *PickRepository {
	return &PickRepository{items: make(map[string]pick.Pick)}
}

func (r *PickRepository) Upsert(_ context.Context, item pick.Pick) (pick.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pickKey(item)
	if existing, ok := r.items[key]; ok {
		// Replace in place: the row identity and creation instant survive.
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
	}
	r.items[key] = clonePick(item)

	return clonePick(item), nil
}

func (r *PickRepository) ListByUserSportWeek(_ context.Context, userID string, sport game.Sport, week int, groupID *string) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0)
	for _, item := range r.items {
		if item.UserID != userID || item.Sport != sport || item.Week != week {
			continue
		}
		if groupID == nil {
			if item.GroupID != nil {
				continue
			}
		} else if item.GroupID == nil || *item.GroupID != *groupID {
			continue
		}
		out = append(out, clonePick(item))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func pickKey(item pick.Pick) string {
	if item.Grouped() {
		return item.UserID + "::" + *item.GroupID + "::" + item.GameID
	}
	return item.UserID + "::" + item.GameID
}

func clonePick(item pick.Pick) pick.Pick {
	copied := item
	if item.GroupID != nil {
		v := *item.GroupID
		copied.GroupID = &v
	}
	if item.Side != nil {
		v := *item.Side
		copied.Side = &v
	}
	if item.Line != nil {
		v := *item.Line
		copied.Line = &v
	}
	if item.Price != nil {
		v := *item.Price
		copied.Price = &v
	}
	return copied
}
