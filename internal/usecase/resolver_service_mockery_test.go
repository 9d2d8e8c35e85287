package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	gamemock "github.com/brendanpatter-netizen/weekendlocks-sub000/internal/mocks/domain/game"
)

func TestResolverService_Resolve_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	repoErr := errors.New("connection reset")
	gameRepo.
		On("ListBySportWeek", mock.Anything, game.SportNFL, 1).
		Return(nil, repoErr).
		Once()

	_, _, err := svc.Resolve(context.Background(), ResolveInput{
		Sport:        game.SportNFL,
		HomeTeam:     "Kansas City Chiefs",
		AwayTeam:     "Los Angeles Chargers",
		CommenceTime: time.Date(2025, 9, 5, 0, 15, 0, 0, time.UTC),
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("repository error must propagate, got %v", err)
	}
}

func TestResolverService_Resolve_ExplicitWeekSkipsCalendarUsingMockery(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	stored := game.Game{
		ID:        "nfl-w4",
		Sport:     game.SportNFL,
		Week:      4,
		HomeTeam:  "Denver Broncos",
		AwayTeam:  "Las Vegas Raiders",
		KickoffAt: time.Date(2025, 9, 28, 20, 0, 0, 0, time.UTC),
	}
	gameRepo.
		On("ListBySportWeek", mock.Anything, game.SportNFL, 4).
		Return([]game.Game{stored}, nil).
		Once()

	matched, found, err := svc.Resolve(context.Background(), ResolveInput{
		Sport:        game.SportNFL,
		Week:         4,
		HomeTeam:     "Denver Broncos",
		AwayTeam:     "Las Vegas Raiders",
		CommenceTime: stored.KickoffAt,
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !found || matched.ID != stored.ID {
		t.Fatalf("expected explicit-week match, got found=%v id=%s", found, matched.ID)
	}
}
