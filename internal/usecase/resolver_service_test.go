package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/season"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/infrastructure/repository/memory"
)

func testCalendars(t *testing.T) season.Set {
	t.Helper()

	nfl, err := season.NewCalendar(game.SportNFL, time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC), 18)
	if err != nil {
		t.Fatalf("build nfl calendar: %v", err)
	}
	cfb, err := season.NewCalendar(game.SportCFB, time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC), 15)
	if err != nil {
		t.Fatalf("build cfb calendar: %v", err)
	}
	return season.NewSet(nfl, cfb)
}

func TestResolverService_Resolve_SubstringMatch(t *testing.T) {
	gameRepo := memory.NewGameRepository(memory.SeedGames())
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	matched, found, err := svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportCFB,
		HomeTeam:     "Ohio State Buckeyes",
		AwayTeam:     "Texas Longhorns",
		CommenceTime: time.Date(2025, 8, 30, 16, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !found {
		t.Fatal("expected a match")
	}
	if matched.ID != memory.GameIDBuckeyesLongh {
		t.Fatalf("unexpected game id: %s", matched.ID)
	}
}

func TestResolverService_Resolve_SwappedSides(t *testing.T) {
	gameRepo := memory.NewGameRepository(memory.SeedGames())
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	matched, found, err := svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportNFL,
		HomeTeam:     "Los Angeles Chargers",
		AwayTeam:     "Kansas City Chiefs",
		CommenceTime: time.Date(2025, 9, 5, 0, 15, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !found || matched.ID != memory.GameIDChiefsChargers {
		t.Fatalf("expected swapped-side match, got found=%v id=%s", found, matched.ID)
	}
}

func TestResolverService_Resolve_DiacriticsAndAmpersand(t *testing.T) {
	gameRepo := memory.NewGameRepository(memory.SeedGames())
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	matched, found, err := svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportCFB,
		HomeTeam:     "San Jose St. Spartans",
		AwayTeam:     "Texas A&M Aggies",
		CommenceTime: time.Date(2025, 9, 6, 23, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !found || matched.ID != memory.GameIDSpartansAggies {
		t.Fatalf("expected normalized match, got found=%v id=%s", found, matched.ID)
	}
}

func TestResolverService_Resolve_WeeklyKickoffGate(t *testing.T) {
	gameRepo := memory.NewGameRepository(memory.SeedGames())
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	kickoff := time.Date(2025, 9, 5, 0, 15, 0, 0, time.UTC)

	_, found, err := svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportNFL,
		HomeTeam:     "Kansas City Chiefs",
		AwayTeam:     "Los Angeles Chargers",
		CommenceTime: kickoff.Add(5 * time.Hour),
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if found {
		t.Fatal("kickoff delta beyond tolerance must not match")
	}

	_, found, err = svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportNFL,
		HomeTeam:     "Kansas City Chiefs",
		AwayTeam:     "Los Angeles Chargers",
		CommenceTime: kickoff.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !found {
		t.Fatal("kickoff delta inside tolerance must match")
	}
}

func TestResolverService_Resolve_SmallestDeltaWins(t *testing.T) {
	gameRepo := memory.NewGameRepository([]game.Game{
		{
			ID:        "nfl-dup-early",
			Sport:     game.SportNFL,
			Week:      1,
			HomeTeam:  "Philadelphia Eagles",
			AwayTeam:  "Dallas Cowboys",
			KickoffAt: time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "nfl-dup-late",
			Sport:     game.SportNFL,
			Week:      1,
			HomeTeam:  "Philadelphia Eagles",
			AwayTeam:  "Dallas Cowboys",
			KickoffAt: time.Date(2025, 9, 5, 1, 20, 0, 0, time.UTC),
		},
	})
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	// 10 minutes from the late kickoff, 90 minutes from the early one.
	matched, found, err := svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportNFL,
		HomeTeam:     "Philadelphia Eagles",
		AwayTeam:     "Dallas Cowboys",
		CommenceTime: time.Date(2025, 9, 5, 1, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !found || matched.ID != "nfl-dup-late" {
		t.Fatalf("expected closest kickoff to win, got found=%v id=%s", found, matched.ID)
	}
}

func TestResolverService_Resolve_NotFoundIsNotAnError(t *testing.T) {
	gameRepo := memory.NewGameRepository(memory.SeedGames())
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	matched, found, err := svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportNFL,
		HomeTeam:     "Green Bay Packers",
		AwayTeam:     "Chicago Bears",
		CommenceTime: time.Date(2025, 9, 5, 0, 15, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("resolve must not error on miss: %v", err)
	}
	if found || matched.ID != "" {
		t.Fatalf("expected no match, got %+v", matched)
	}
}

func TestResolverService_Resolve_InvalidInput(t *testing.T) {
	gameRepo := memory.NewGameRepository(nil)
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	_, _, err := svc.Resolve(t.Context(), ResolveInput{
		Sport:        "hockey",
		HomeTeam:     "A",
		AwayTeam:     "B",
		CommenceTime: time.Now(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, _, err = svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportNFL,
		HomeTeam:     "",
		AwayTeam:     "B",
		CommenceTime: time.Now(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty team, got %v", err)
	}
}

func TestResolverService_Resolve_RangeWindow(t *testing.T) {
	gameRepo := memory.NewGameRepository(memory.SeedGames())
	svc := NewResolverService(gameRepo, testCalendars(t), ResolverConfig{})

	// 40 hours before the stored kickoff still lands inside the range gate.
	matched, found, err := svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportCFB,
		HomeTeam:     "Ohio State",
		AwayTeam:     "Texas",
		CommenceTime: time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !found || matched.ID != memory.GameIDBuckeyesLongh {
		t.Fatalf("expected range match, got found=%v id=%s", found, matched.ID)
	}

	_, found, err = svc.Resolve(t.Context(), ResolveInput{
		Sport:        game.SportCFB,
		HomeTeam:     "Ohio State",
		AwayTeam:     "Texas",
		CommenceTime: time.Date(2025, 9, 3, 16, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if found {
		t.Fatal("commence time beyond the range gate must not match")
	}
}
