package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/season"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/infrastructure/repository/memory"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/id"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/logging"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/usecase"
)

type emptyOddsProvider struct{}

func (emptyOddsProvider) Events(_ context.Context, _ game.Sport) ([]usecase.FeedEvent, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	nfl, err := season.NewCalendar(game.SportNFL, time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC), 18)
	if err != nil {
		t.Fatalf("build nfl calendar: %v", err)
	}
	cfb, err := season.NewCalendar(game.SportCFB, time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC), 15)
	if err != nil {
		t.Fatalf("build cfb calendar: %v", err)
	}
	calendars := season.NewSet(nfl, cfb)

	gameRepo := memory.NewGameRepository(memory.SeedGames())
	pickRepo := memory.NewPickRepository()

	resolver := usecase.NewResolverService(gameRepo, calendars, usecase.ResolverConfig{})
	handler := NewHandler(
		usecase.NewScheduleService(gameRepo, calendars),
		usecase.NewBoardService(emptyOddsProvider{}, resolver, calendars, nil, logging.NewNop()),
		usecase.NewPickService(gameRepo, pickRepo, id.NewRandomGenerator()),
		slog.New(slog.DiscardHandler),
	)

	return NewRouter(handler, slog.New(slog.DiscardHandler), nil)
}

type pickEnvelope struct {
	APIVersion string  `json:"apiVersion"`
	Data       pickDTO `json:"data"`
}

func TestRecordPick_RequiresUser(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/picks", strings.NewReader(`{"game_id":"x","market":"spreads"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRecordPick_RoundTrip(t *testing.T) {
	router := newTestRouter(t)

	body := `{"game_id":"` + memory.GameIDChiefsChargers + `","market":"spreads","side":"Kansas City Chiefs","line":-3.5,"price":-110}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/picks", strings.NewReader(body))
	req.Header.Set("X-User-ID", "user-1")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope pickEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.GameID != memory.GameIDChiefsChargers || envelope.Data.Market != "spreads" {
		t.Fatalf("unexpected pick payload: %+v", envelope.Data)
	}
	if envelope.Data.Sport != "nfl" || envelope.Data.Week != 1 {
		t.Fatalf("pick did not inherit game fields: %+v", envelope.Data)
	}

	// Same slot again: the pick is replaced, not duplicated.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/v1/picks", strings.NewReader(
		`{"game_id":"`+memory.GameIDChiefsChargers+`","market":"spreads","side":"Los Angeles Chargers"}`))
	req.Header.Set("X-User-ID", "user-1")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on replace, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/picks?sport=nfl&week=1", nil)
	req.Header.Set("X-User-ID", "user-1")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on list, got %d", rec.Code)
	}

	var listEnvelope struct {
		Data []pickDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &listEnvelope); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listEnvelope.Data) != 1 {
		t.Fatalf("expected one pick after replace, got %d", len(listEnvelope.Data))
	}
	if listEnvelope.Data[0].Side == nil || *listEnvelope.Data[0].Side != "Los Angeles Chargers" {
		t.Fatalf("expected the replacement side: %+v", listEnvelope.Data[0].Side)
	}
}

func TestRecordPick_InvalidMarket(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/picks", strings.NewReader(
		`{"game_id":"`+memory.GameIDChiefsChargers+`","market":"parlay"}`))
	req.Header.Set("X-User-ID", "user-1")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRecordPick_UnknownGame(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/picks", strings.NewReader(
		`{"game_id":"missing","market":"h2h"}`))
	req.Header.Set("X-User-ID", "user-1")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetCurrentWeekEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/sports/nfl/weeks/current", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetGameEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/games/"+memory.GameIDBuckeyesLongh, nil)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/games/missing", nil)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
