package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/pick"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/season"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/usecase"
)

type Handler struct {
	scheduleService *usecase.ScheduleService
	boardService    *usecase.BoardService
	pickService     *usecase.PickService
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(
	scheduleService *usecase.ScheduleService,
	boardService *usecase.BoardService,
	pickService *usecase.PickService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		scheduleService: scheduleService,
		boardService:    boardService,
		pickService:     pickService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type gameDTO struct {
	ID        string    `json:"id"`
	Sport     string    `json:"sport"`
	Week      int       `json:"week"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	KickoffAt time.Time `json:"kickoff_at"`
}

func gameToDTO(item game.Game) gameDTO {
	return gameDTO{
		ID:        item.ID,
		Sport:     string(item.Sport),
		Week:      item.Week,
		HomeTeam:  item.HomeTeam,
		AwayTeam:  item.AwayTeam,
		KickoffAt: item.KickoffAt,
	}
}

type weekWindowDTO struct {
	Week  int       `json:"week"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func weekWindowToDTO(item season.WeekWindow) weekWindowDTO {
	return weekWindowDTO{Week: item.Week, Start: item.Start, End: item.End}
}

type pickDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	GroupID   *string   `json:"group_id,omitempty"`
	GameID    string    `json:"game_id"`
	Sport     string    `json:"sport"`
	Week      int       `json:"week"`
	Market    string    `json:"market"`
	Side      *string   `json:"side,omitempty"`
	Line      *float64  `json:"line,omitempty"`
	Price     *int      `json:"price,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func pickToDTO(item pick.Pick) pickDTO {
	return pickDTO{
		ID:        item.ID,
		UserID:    item.UserID,
		GroupID:   item.GroupID,
		GameID:    item.GameID,
		Sport:     string(item.Sport),
		Week:      item.Week,
		Market:    string(item.Market),
		Side:      item.Side,
		Line:      item.Line,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

type boardDTO struct {
	Sport   string          `json:"sport"`
	Week    int             `json:"week"`
	Entries []boardEntryDTO `json:"entries"`
}

type boardEntryDTO struct {
	EventID      string         `json:"event_id"`
	HomeTeam     string         `json:"home_team"`
	AwayTeam     string         `json:"away_team"`
	CommenceTime time.Time      `json:"commence_time"`
	Week         int            `json:"week"`
	GameID       string         `json:"game_id,omitempty"`
	Matched      bool           `json:"matched"`
	HomeLogoURL  string         `json:"home_logo_url,omitempty"`
	AwayLogoURL  string         `json:"away_logo_url,omitempty"`
	Bookmakers   []bookmakerDTO `json:"bookmakers"`
}

type bookmakerDTO struct {
	Key        string      `json:"key"`
	Title      string      `json:"title"`
	LastUpdate time.Time   `json:"last_update"`
	Markets    []marketDTO `json:"markets"`
}

type marketDTO struct {
	Key      string       `json:"key"`
	Outcomes []outcomeDTO `json:"outcomes"`
}

type outcomeDTO struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

func boardToDTO(board usecase.Board) boardDTO {
	entries := make([]boardEntryDTO, 0, len(board.Entries))
	for _, entry := range board.Entries {
		entries = append(entries, boardEntryToDTO(entry))
	}
	return boardDTO{
		Sport:   string(board.Sport),
		Week:    board.Week,
		Entries: entries,
	}
}

func boardEntryToDTO(entry usecase.BoardEntry) boardEntryDTO {
	bookmakers := make([]bookmakerDTO, 0, len(entry.Event.Bookmakers))
	for _, bm := range entry.Event.Bookmakers {
		markets := make([]marketDTO, 0, len(bm.Markets))
		for _, market := range bm.Markets {
			outcomes := make([]outcomeDTO, 0, len(market.Outcomes))
			for _, outcome := range market.Outcomes {
				outcomes = append(outcomes, outcomeDTO{
					Name:  outcome.Name,
					Price: outcome.Price,
					Point: outcome.Point,
				})
			}
			markets = append(markets, marketDTO{Key: market.Key, Outcomes: outcomes})
		}
		bookmakers = append(bookmakers, bookmakerDTO{
			Key:        bm.Key,
			Title:      bm.Title,
			LastUpdate: bm.LastUpdate,
			Markets:    markets,
		})
	}

	return boardEntryDTO{
		EventID:      entry.Event.ExternalID,
		HomeTeam:     entry.Event.HomeTeam,
		AwayTeam:     entry.Event.AwayTeam,
		CommenceTime: entry.Event.CommenceTime,
		Week:         entry.Week,
		GameID:       entry.GameID,
		Matched:      entry.Matched,
		HomeLogoURL:  entry.HomeLogoURL,
		AwayLogoURL:  entry.AwayLogoURL,
		Bookmakers:   bookmakers,
	}
}
