package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/external/oddsfeed"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/config"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/pick"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/season"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/infrastructure/logos"
	cacherepo "github.com/brendanpatter-netizen/weekendlocks-sub000/internal/infrastructure/repository/cache"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/infrastructure/repository/memory"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/infrastructure/repository/postgres"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/interfaces/httpapi"
	basecache "github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/cache"
	idgen "github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/id"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/logging"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/resilience"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/usecase"
)

type gameStore interface {
	game.Repository
	Upsert(ctx context.Context, item game.Game) error
}

// NewHTTPServer assembles the service. The returned cleanup closes any
// resources the wiring opened, the database connection in particular, and is
// safe to call after server shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cleanup := func() error { return nil }

	calendars, err := buildCalendars(cfg)
	if err != nil {
		return nil, nil, err
	}

	var (
		games gameStore
		picks pick.Repository
	)
	if cfg.DBURL == "" {
		logger.Info("no DB_URL configured, using in-memory repositories")
		games = memory.NewGameRepository(memory.SeedGames())
		picks = memory.NewPickRepository()
	} else {
		db, err := otelsqlx.ConnectContext(ctx, "postgres",
			normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		cleanup = db.Close

		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
		}

		games = postgres.NewGameRepository(db)
		picks = postgres.NewPickRepository(db)
	}

	var gameRepo game.Repository = games
	if cfg.CacheEnabled {
		gameRepo = cacherepo.NewGameRepository(games, basecache.NewStore(cfg.CacheTTL))
	}

	resolver := usecase.NewResolverService(gameRepo, calendars, usecase.ResolverConfig{
		WeeklyKickoffTolerance: cfg.ResolverWeeklyTolerance,
		RangeKickoffTolerance:  cfg.ResolverRangeTolerance,
	})
	scheduleSvc := usecase.NewScheduleService(gameRepo, calendars)
	pickSvc := usecase.NewPickService(gameRepo, picks, idgen.NewRandomGenerator())

	var provider usecase.OddsProvider = disabledOddsProvider{}
	if cfg.OddsAPIEnabled {
		provider = oddsfeed.NewClient(oddsfeed.ClientConfig{
			HTTPClient: &http.Client{Timeout: cfg.OddsAPITimeout},
			BaseURL:    cfg.OddsAPIBaseURL,
			APIKey:     cfg.OddsAPIKey,
			Regions:    cfg.OddsAPIRegions,
			Markets:    cfg.OddsAPIMarkets,
			Timeout:    cfg.OddsAPITimeout,
			MaxRetries: cfg.OddsAPIMaxRetries,
			Logger:     logging.Default(),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.OddsAPICircuitEnabled,
				FailureThreshold: cfg.OddsAPICircuitFailureCount,
				OpenTimeout:      cfg.OddsAPICircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.OddsAPICircuitHalfOpenMaxReq,
			},
		})
	}

	var logoResolver usecase.LogoResolver
	if cdn := logos.NewCDN(cfg.LogoCDNBaseURL); cdn != nil {
		logoResolver = cdn
	}

	boardSvc := usecase.NewBoardService(provider, resolver, calendars, logoResolver, logging.Default())

	handler := httpapi.NewHandler(scheduleSvc, boardSvc, pickSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildCalendars(cfg config.Config) (season.Set, error) {
	nfl, err := season.NewCalendar(game.SportNFL, cfg.NFLSeasonOpen, cfg.NFLSeasonWeeks)
	if err != nil {
		return season.Set{}, fmt.Errorf("build nfl calendar: %w", err)
	}
	cfb, err := season.NewCalendar(game.SportCFB, cfg.CFBSeasonOpen, cfg.CFBSeasonWeeks)
	if err != nil {
		return season.Set{}, fmt.Errorf("build cfb calendar: %w", err)
	}

	return season.NewSet(nfl, cfb), nil
}

// disabledOddsProvider stands in when no Odds API key is configured. The
// board endpoints answer 503 instead of the service failing to boot.
type disabledOddsProvider struct{}

func (disabledOddsProvider) Events(_ context.Context, _ game.Sport) ([]usecase.FeedEvent, error) {
	return nil, fmt.Errorf("%w: odds feed is not configured", usecase.ErrDependencyUnavailable)
}
