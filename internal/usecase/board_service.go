package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/season"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/logging"
)

const defaultBoardWorkers = 8

// FeedEvent is one upcoming matchup from the odds feed, already mapped out of
// the provider's wire format.
type FeedEvent struct {
	ExternalID   string
	Sport        game.Sport
	HomeTeam     string
	AwayTeam     string
	CommenceTime time.Time
	Bookmakers   []FeedBookmaker
}

type FeedBookmaker struct {
	Key        string
	Title      string
	LastUpdate time.Time
	Markets    []FeedMarket
}

type FeedMarket struct {
	Key      string
	Outcomes []FeedOutcome
}

type FeedOutcome struct {
	Name  string
	Price int
	Point *float64
}

// OddsProvider fetches the current odds board for one sport.
type OddsProvider interface {
	Events(ctx context.Context, sport game.Sport) ([]FeedEvent, error)
}

// LogoResolver is an optional capability: implementations map a team name to
// a logo URL. A nil resolver disables logos without any other effect.
type LogoResolver interface {
	LogoURL(sport game.Sport, teamName string) (string, bool)
}

// BoardEntry pairs a feed event with the stored game it resolved to, when one
// exists. Unmatched events stay on the board so the client can still render
// the matchup.
type BoardEntry struct {
	Event       FeedEvent
	GameID      string
	Week        int
	Matched     bool
	HomeLogoURL string
	AwayLogoURL string
}

type Board struct {
	Sport   game.Sport
	Week    int
	Entries []BoardEntry
}

type BoardService struct {
	provider   OddsProvider
	resolver   *ResolverService
	calendars  season.Set
	logos      LogoResolver
	logger     *logging.Logger
	maxWorkers int
	now        func() time.Time
}

// NewBoardService wires the odds board. The logo resolver is optional and is
// bound once here rather than probed per request.
func NewBoardService(
	provider OddsProvider,
	resolver *ResolverService,
	calendars season.Set,
	logos LogoResolver,
	logger *logging.Logger,
) *BoardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BoardService{
		provider:   provider,
		resolver:   resolver,
		calendars:  calendars,
		logos:      logos,
		logger:     logger,
		maxWorkers: defaultBoardWorkers,
		now:        time.Now,
	}
}

// Board fetches the feed for one sport and resolves every event against the
// stored schedule. Entry order follows feed order.
func (s *BoardService) Board(ctx context.Context, sportValue string) (Board, error) {
	ctx, span := startUsecaseSpan(ctx, "BoardService.Board")
	defer span.End()

	sport, err := game.ParseSport(sportValue)
	if err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	calendar, ok := s.calendars.For(sport)
	if !ok {
		return Board{}, fmt.Errorf("%w: no season calendar for sport %s", ErrDependencyUnavailable, sport)
	}

	events, err := s.provider.Events(ctx, sport)
	if err != nil {
		return Board{}, fmt.Errorf("%w: fetch odds feed for %s: %v", ErrDependencyUnavailable, sport, err)
	}

	board := Board{
		Sport:   sport,
		Week:    calendar.WeekAt(s.now()),
		Entries: make([]BoardEntry, len(events)),
	}
	if len(events) == 0 {
		return board, nil
	}

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return Board{}, fmt.Errorf("create board worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, event := range events {
		i, event := i, event
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			board.Entries[i] = s.resolveEntry(ctx, calendar, event)
		}); err != nil {
			workers.Done()
			return Board{}, fmt.Errorf("submit board task to worker pool: %w", err)
		}
	}
	workers.Wait()

	return board, nil
}

// Boards fetches every configured sport concurrently. A sport whose feed is
// down is logged and skipped; the call fails only when no sport produced a
// board.
func (s *BoardService) Boards(ctx context.Context) ([]Board, error) {
	ctx, span := startUsecaseSpan(ctx, "BoardService.Boards")
	defer span.End()

	sports := game.Sports()
	boards := make([]Board, len(sports))
	errs := make([]error, len(sports))

	var wg conc.WaitGroup
	for i, sport := range sports {
		i, sport := i, sport
		wg.Go(func() {
			boards[i], errs[i] = s.Board(ctx, string(sport))
		})
	}
	wg.Wait()

	out := make([]Board, 0, len(sports))
	var lastErr error
	for i, sport := range sports {
		if errs[i] != nil {
			lastErr = errs[i]
			s.logger.WarnContext(ctx, "odds board unavailable", "sport", string(sport), "error", errs[i].Error())
			continue
		}
		out = append(out, boards[i])
	}

	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func (s *BoardService) resolveEntry(ctx context.Context, calendar season.Calendar, event FeedEvent) BoardEntry {
	entry := BoardEntry{
		Event: event,
		Week:  calendar.WeekAt(event.CommenceTime),
	}

	matched, found, err := s.resolver.Resolve(ctx, ResolveInput{
		Sport:        event.Sport,
		HomeTeam:     event.HomeTeam,
		AwayTeam:     event.AwayTeam,
		CommenceTime: event.CommenceTime,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "resolve board event failed",
			"sport", string(event.Sport),
			"home_team", event.HomeTeam,
			"away_team", event.AwayTeam,
			"error", err.Error(),
		)
	}
	if found {
		entry.GameID = matched.ID
		entry.Week = matched.Week
		entry.Matched = true
	}

	if s.logos != nil {
		if url, ok := s.logos.LogoURL(event.Sport, event.HomeTeam); ok {
			entry.HomeLogoURL = url
		}
		if url, ok := s.logos.LogoURL(event.Sport, event.AwayTeam); ok {
			entry.AwayLogoURL = url
		}
	}

	return entry
}
