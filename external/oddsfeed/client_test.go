package oddsfeed

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/logging"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/usecase"
)

const sampleBoard = `[
  {
    "id": "ev-100",
    "sport_key": "americanfootball_nfl",
    "sport_title": "NFL",
    "commence_time": "2025-09-05T00:15:00Z",
    "home_team": "Kansas City Chiefs",
    "away_team": "Los Angeles Chargers",
    "bookmakers": [
      {
        "key": "draftkings",
        "title": "DraftKings",
        "last_update": "2025-09-04T18:00:00Z",
        "markets": [
          {
            "key": "spreads",
            "outcomes": [
              {"name": "Kansas City Chiefs", "price": -110, "point": -3.5},
              {"name": "Los Angeles Chargers", "price": -110, "point": 3.5}
            ]
          }
        ]
      }
    ]
  },
  {
    "id": "ev-101",
    "sport_key": "americanfootball_nfl",
    "sport_title": "NFL",
    "commence_time": "not-a-time",
    "home_team": "Green Bay Packers",
    "away_team": "Chicago Bears",
    "bookmakers": []
  }
]`

func TestClient_Events_MapsPayload(t *testing.T) {
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("apiKey")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBoard))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  "secret-key",
		Logger:  logging.NewNop(),
	})

	events, err := client.Events(t.Context(), game.SportNFL)
	if err != nil {
		t.Fatalf("events failed: %v", err)
	}

	if gotPath != "/sports/americanfootball_nfl/odds" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotKey != "secret-key" {
		t.Fatalf("api key was not sent: %q", gotKey)
	}

	if len(events) != 1 {
		t.Fatalf("expected the bad-commence event to be skipped, got %d events", len(events))
	}

	ev := events[0]
	if ev.ExternalID != "ev-100" || ev.Sport != game.SportNFL {
		t.Fatalf("unexpected event header: %+v", ev)
	}
	if ev.HomeTeam != "Kansas City Chiefs" || ev.AwayTeam != "Los Angeles Chargers" {
		t.Fatalf("unexpected teams: %+v", ev)
	}
	if len(ev.Bookmakers) != 1 || ev.Bookmakers[0].Key != "draftkings" {
		t.Fatalf("unexpected bookmakers: %+v", ev.Bookmakers)
	}
	outcomes := ev.Bookmakers[0].Markets[0].Outcomes
	if len(outcomes) != 2 || outcomes[0].Price != -110 {
		t.Fatalf("unexpected outcomes: %+v", outcomes)
	}
	if outcomes[0].Point == nil || *outcomes[0].Point != -3.5 {
		t.Fatalf("unexpected point: %+v", outcomes[0].Point)
	}
}

func TestClient_Events_UnknownSport(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://localhost", Logger: logging.NewNop()})

	_, err := client.Events(t.Context(), game.Sport("hockey"))
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClient_Events_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream exploded", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		APIKey:     "secret-key",
		MaxRetries: 2,
		Logger:     logging.NewNop(),
	})

	events, err := client.Events(t.Context(), game.SportCFB)
	if err != nil {
		t.Fatalf("events failed after retry: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty board, got %d events", len(events))
	}
	if calls.Load() != 2 {
		t.Fatalf("expected one retry, got %d calls", calls.Load())
	}
}

func TestClient_Events_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		APIKey:     "secret-key",
		MaxRetries: 3,
		Logger:     logging.NewNop(),
	})

	_, err := client.Events(t.Context(), game.SportNFL)
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("client errors must not retry, got %d calls", calls.Load())
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	got := sanitizeSensitiveText(`Get "https://api.example.com/v4/sports?apiKey=abc123": dial tcp: timeout`, "abc123")
	if strings.Contains(got, "abc123") {
		t.Fatalf("api key leaked: %s", got)
	}
	if !strings.Contains(got, "apiKey=REDACTED") {
		t.Fatalf("expected redaction marker: %s", got)
	}
}

func TestRedactAPIURL(t *testing.T) {
	got := redactAPIURL("https://api.example.com/v4/sports/americanfootball_nfl/odds?apiKey=abc123&regions=us")
	if strings.Contains(got, "abc123") {
		t.Fatalf("api key leaked: %s", got)
	}
}
