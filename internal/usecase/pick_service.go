package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/pick"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/id"
)

type RecordPickInput struct {
	UserID  string
	GroupID string
	GameID  string
	Market  string
	Side    string
	Line    *float64
	Price   *int
}

type ListPicksInput struct {
	UserID  string
	GroupID string
	Sport   game.Sport
	Week    int
}

// PickService records user picks against resolved games. Recording the same
// slot twice replaces the previous selection in place.
type PickService struct {
	gameRepo game.Repository
	pickRepo pick.Repository
	ids      id.Generator
	now      func() time.Time
}

func NewPickService(gameRepo game.Repository, pickRepo pick.Repository, ids id.Generator) *PickService {
	return &PickService{
		gameRepo: gameRepo,
		pickRepo: pickRepo,
		ids:      ids,
		now:      time.Now,
	}
}

func (s *PickService) Record(ctx context.Context, input RecordPickInput) (pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "PickService.Record")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.GroupID = strings.TrimSpace(input.GroupID)
	input.GameID = strings.TrimSpace(input.GameID)
	input.Side = strings.TrimSpace(input.Side)

	if input.UserID == "" {
		return pick.Pick{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if input.GameID == "" {
		return pick.Pick{}, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}
	market, err := pick.ParseMarket(input.Market)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	matched, exists, err := s.gameRepo.GetByID(ctx, input.GameID)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return pick.Pick{}, fmt.Errorf("%w: game=%s", ErrNotFound, input.GameID)
	}

	publicID, err := s.ids.NewID()
	if err != nil {
		return pick.Pick{}, fmt.Errorf("generate pick id: %w", err)
	}

	item := pick.Pick{
		ID:        publicID,
		UserID:    input.UserID,
		GameID:    matched.ID,
		Sport:     matched.Sport,
		Week:      matched.Week,
		Market:    market,
		UpdatedAt: s.now().UTC(),
	}
	item.CreatedAt = item.UpdatedAt
	if input.GroupID != "" {
		groupID := input.GroupID
		item.GroupID = &groupID
	}
	if input.Side != "" {
		side := input.Side
		item.Side = &side
	}
	if input.Line != nil {
		line := *input.Line
		item.Line = &line
	}
	if input.Price != nil {
		price := *input.Price
		item.Price = &price
	}

	if err := item.Validate(); err != nil {
		return pick.Pick{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.pickRepo.Upsert(ctx, item)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("upsert pick: %w", err)
	}

	return saved, nil
}

func (s *PickService) ListForUser(ctx context.Context, input ListPicksInput) ([]pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "PickService.ListForUser")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.GroupID = strings.TrimSpace(input.GroupID)

	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if _, err := game.ParseSport(string(input.Sport)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.Week < 1 {
		return nil, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	var groupID *string
	if input.GroupID != "" {
		groupID = &input.GroupID
	}

	picks, err := s.pickRepo.ListByUserSportWeek(ctx, input.UserID, input.Sport, input.Week, groupID)
	if err != nil {
		return nil, fmt.Errorf("list picks by user: %w", err)
	}

	return picks, nil
}
