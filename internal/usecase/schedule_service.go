package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/season"
)

// ScheduleService answers week-calendar and stored-schedule reads.
type ScheduleService struct {
	gameRepo  game.Repository
	calendars season.Set
	now       func() time.Time
}

func NewScheduleService(gameRepo game.Repository, calendars season.Set) *ScheduleService {
	return &ScheduleService{
		gameRepo:  gameRepo,
		calendars: calendars,
		now:       time.Now,
	}
}

func (s *ScheduleService) CurrentWeek(ctx context.Context, sportValue string) (int, error) {
	_, span := startUsecaseSpan(ctx, "ScheduleService.CurrentWeek")
	defer span.End()

	sport, err := game.ParseSport(sportValue)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	calendar, ok := s.calendars.For(sport)
	if !ok {
		return 0, fmt.Errorf("%w: no season calendar for sport %s", ErrDependencyUnavailable, sport)
	}

	return calendar.WeekAt(s.now()), nil
}

func (s *ScheduleService) Windows(ctx context.Context, sportValue string) ([]season.WeekWindow, error) {
	_, span := startUsecaseSpan(ctx, "ScheduleService.Windows")
	defer span.End()

	sport, err := game.ParseSport(sportValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	calendar, ok := s.calendars.For(sport)
	if !ok {
		return nil, fmt.Errorf("%w: no season calendar for sport %s", ErrDependencyUnavailable, sport)
	}

	return calendar.Windows(), nil
}

func (s *ScheduleService) ListWeek(ctx context.Context, sportValue string, week int) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.ListWeek")
	defer span.End()

	sport, err := game.ParseSport(sportValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	calendar, ok := s.calendars.For(sport)
	if !ok {
		return nil, fmt.Errorf("%w: no season calendar for sport %s", ErrDependencyUnavailable, sport)
	}
	if _, ok := calendar.Window(week); !ok {
		return nil, fmt.Errorf("%w: week %d is outside the %s season", ErrInvalidInput, week, sport)
	}

	games, err := s.gameRepo.ListBySportWeek(ctx, sport, week)
	if err != nil {
		return nil, fmt.Errorf("list games by sport and week: %w", err)
	}

	return games, nil
}

func (s *ScheduleService) Get(ctx context.Context, gameID string) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.Get")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	return item, nil
}
