package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/season"
)

const (
	defaultWeeklyKickoffTolerance = 3 * time.Hour
	defaultRangeKickoffTolerance  = 48 * time.Hour
)

type ResolverConfig struct {
	// WeeklyKickoffTolerance bounds the kickoff delta when candidates come
	// from a week bucket. Applied to NFL lookups.
	WeeklyKickoffTolerance time.Duration
	// RangeKickoffTolerance bounds the kickoff delta when candidates come
	// from a kickoff window around the feed time. Applied to CFB lookups.
	RangeKickoffTolerance time.Duration
}

func (c ResolverConfig) normalized() ResolverConfig {
	if c.WeeklyKickoffTolerance <= 0 {
		c.WeeklyKickoffTolerance = defaultWeeklyKickoffTolerance
	}
	if c.RangeKickoffTolerance <= 0 {
		c.RangeKickoffTolerance = defaultRangeKickoffTolerance
	}
	return c
}

type ResolveInput struct {
	Sport        game.Sport
	HomeTeam     string
	AwayTeam     string
	CommenceTime time.Time
	// Week narrows weekly lookups. Zero means derive it from CommenceTime.
	Week int
}

// ResolverService maps feed matchups onto stored games. A matchup that has
// no stored counterpart is a normal outcome, not an error.
type ResolverService struct {
	gameRepo  game.Repository
	calendars season.Set
	cfg       ResolverConfig
}

func NewResolverService(gameRepo game.Repository, calendars season.Set, cfg ResolverConfig) *ResolverService {
	return &ResolverService{
		gameRepo:  gameRepo,
		calendars: calendars,
		cfg:       cfg.normalized(),
	}
}

func (s *ResolverService) Resolve(ctx context.Context, input ResolveInput) (game.Game, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "ResolverService.Resolve")
	defer span.End()

	input.HomeTeam = strings.TrimSpace(input.HomeTeam)
	input.AwayTeam = strings.TrimSpace(input.AwayTeam)

	if _, err := game.ParseSport(string(input.Sport)); err != nil {
		return game.Game{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.HomeTeam == "" || input.AwayTeam == "" {
		return game.Game{}, false, fmt.Errorf("%w: home_team and away_team are required", ErrInvalidInput)
	}
	if input.CommenceTime.IsZero() {
		return game.Game{}, false, fmt.Errorf("%w: commence_time is required", ErrInvalidInput)
	}

	candidates, tolerance, err := s.candidates(ctx, input)
	if err != nil {
		return game.Game{}, false, err
	}

	queryHome := game.NormalizeTeamName(input.Sport, input.HomeTeam)
	queryAway := game.NormalizeTeamName(input.Sport, input.AwayTeam)

	var (
		best      game.Game
		bestDelta time.Duration
		found     bool
	)
	for _, candidate := range candidates {
		candidateHome := game.NormalizeTeamName(candidate.Sport, candidate.HomeTeam)
		candidateAway := game.NormalizeTeamName(candidate.Sport, candidate.AwayTeam)

		direct := namesMatch(queryHome, candidateHome) && namesMatch(queryAway, candidateAway)
		swapped := namesMatch(queryHome, candidateAway) && namesMatch(queryAway, candidateHome)
		if !direct && !swapped {
			continue
		}

		delta := absDuration(candidate.KickoffAt.Sub(input.CommenceTime))
		if delta > tolerance {
			continue
		}
		// Candidates arrive in stable order, so the first game at the
		// smallest delta wins deterministically.
		if !found || delta < bestDelta {
			best = candidate
			bestDelta = delta
			found = true
		}
	}

	if !found {
		return game.Game{}, false, nil
	}
	return best, true, nil
}

func (s *ResolverService) candidates(ctx context.Context, input ResolveInput) ([]game.Game, time.Duration, error) {
	switch input.Sport {
	case game.SportNFL:
		week := input.Week
		if week == 0 {
			calendar, ok := s.calendars.For(input.Sport)
			if !ok {
				return nil, 0, fmt.Errorf("%w: no season calendar for sport %s", ErrDependencyUnavailable, input.Sport)
			}
			week = calendar.WeekAt(input.CommenceTime)
		}

		games, err := s.gameRepo.ListBySportWeek(ctx, input.Sport, week)
		if err != nil {
			return nil, 0, fmt.Errorf("list games by sport and week: %w", err)
		}
		return games, s.cfg.WeeklyKickoffTolerance, nil

	case game.SportCFB:
		tolerance := s.cfg.RangeKickoffTolerance
		from := input.CommenceTime.Add(-tolerance)
		to := input.CommenceTime.Add(tolerance)

		games, err := s.gameRepo.ListByKickoffRange(ctx, input.Sport, from, to)
		if err != nil {
			return nil, 0, fmt.Errorf("list games by kickoff range: %w", err)
		}
		return games, tolerance, nil

	default:
		return nil, 0, fmt.Errorf("%w: unsupported sport %q", ErrInvalidInput, input.Sport)
	}
}

// namesMatch accepts either containment direction so that a feed name like
// "Ohio State Buckeyes" lines up with a stored "Ohio State" and vice versa.
func namesMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
