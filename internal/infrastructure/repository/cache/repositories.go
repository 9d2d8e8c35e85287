package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	basecache "github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/cache"
)

type gameStore interface {
	game.Repository
	Upsert(ctx context.Context, item game.Game) error
}

// GameRepository caches schedule reads in front of another game store. The
// schedule changes rarely, so a short TTL keeps the resolver's hot path off
// the database without staleness concerns.
type GameRepository struct {
	next  gameStore
	cache *basecache.Store
}

func NewGameRepository(next gameStore, cache *basecache.Store) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

func (r *GameRepository) Upsert(ctx context.Context, item game.Game) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	// Week and range listings may hold a stale copy; id lookups are the only
	// key we can invalidate precisely.
	r.cache.Delete(ctx, "game:id:"+item.ID)
	r.cache.Delete(ctx, "game:week:"+string(item.Sport)+":"+strconv.Itoa(item.Week))
	return nil
}

func (r *GameRepository) ListBySportWeek(ctx context.Context, sport game.Sport, week int) ([]game.Game, error) {
	key := "game:week:" + string(sport) + ":" + strconv.Itoa(week)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySportWeek(ctx, sport, week)
		if err != nil {
			return nil, err
		}
		return append([]game.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]game.Game)
	return append([]game.Game(nil), items...), nil
}

func (r *GameRepository) ListByKickoffRange(ctx context.Context, sport game.Sport, from, to time.Time) ([]game.Game, error) {
	key := "game:range:" + string(sport) + ":" +
		strconv.FormatInt(from.UTC().Unix(), 10) + ":" +
		strconv.FormatInt(to.UTC().Unix(), 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByKickoffRange(ctx, sport, from, to)
		if err != nil {
			return nil, err
		}
		return append([]game.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]game.Game)
	return append([]game.Game(nil), items...), nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	key := "game:id:" + gameID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, gameID)
		if err != nil {
			return nil, err
		}
		return cachedGameByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return game.Game{}, false, err
	}

	cached, _ := v.(cachedGameByID)
	return cached.value, cached.exists, nil
}

type cachedGameByID struct {
	value  game.Game
	exists bool
}
