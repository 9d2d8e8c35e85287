package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/infrastructure/repository/memory"
)

func TestScheduleService_CurrentWeek(t *testing.T) {
	svc := NewScheduleService(memory.NewGameRepository(memory.SeedGames()), testCalendars(t))
	svc.now = func() time.Time { return time.Date(2025, 9, 10, 15, 0, 0, 0, time.UTC) }

	week, err := svc.CurrentWeek(t.Context(), "nfl")
	if err != nil {
		t.Fatalf("current week failed: %v", err)
	}
	if week != 2 {
		t.Fatalf("expected nfl week 2, got %d", week)
	}

	week, err = svc.CurrentWeek(t.Context(), "cfb")
	if err != nil {
		t.Fatalf("current week failed: %v", err)
	}
	if week != 3 {
		t.Fatalf("expected cfb week 3, got %d", week)
	}
}

func TestScheduleService_CurrentWeek_UnknownSport(t *testing.T) {
	svc := NewScheduleService(memory.NewGameRepository(nil), testCalendars(t))

	if _, err := svc.CurrentWeek(t.Context(), "hockey"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestScheduleService_Windows(t *testing.T) {
	svc := NewScheduleService(memory.NewGameRepository(nil), testCalendars(t))

	windows, err := svc.Windows(t.Context(), "nfl")
	if err != nil {
		t.Fatalf("windows failed: %v", err)
	}
	if len(windows) != 18 {
		t.Fatalf("expected 18 nfl windows, got %d", len(windows))
	}
	if !windows[0].Start.Equal(time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected season open: %v", windows[0].Start)
	}
}

func TestScheduleService_ListWeek(t *testing.T) {
	svc := NewScheduleService(memory.NewGameRepository(memory.SeedGames()), testCalendars(t))

	games, err := svc.ListWeek(t.Context(), "nfl", 1)
	if err != nil {
		t.Fatalf("list week failed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 week-1 nfl games, got %d", len(games))
	}

	if _, err := svc.ListWeek(t.Context(), "nfl", 19); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-season week, got %v", err)
	}
}

func TestScheduleService_Get(t *testing.T) {
	svc := NewScheduleService(memory.NewGameRepository(memory.SeedGames()), testCalendars(t))

	item, err := svc.Get(t.Context(), memory.GameIDBillsRavens)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if item.Week != 2 {
		t.Fatalf("unexpected game: %+v", item)
	}

	if _, err := svc.Get(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
