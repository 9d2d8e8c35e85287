package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/usecase"
)

func (h *Handler) ListGamesByWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGamesByWeek")
	defer span.End()

	sport := r.PathValue("sport")
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: week must be a number", usecase.ErrInvalidInput))
		return
	}

	games, err := h.scheduleService.ListWeek(ctx, sport, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "sport", sport, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, item := range games {
		items = append(items, gameToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	item, err := h.scheduleService.Get(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}
