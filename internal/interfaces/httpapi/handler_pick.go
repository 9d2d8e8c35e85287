package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/usecase"
)

type recordPickRequest struct {
	GroupID string   `json:"group_id" validate:"omitempty,max=64"`
	GameID  string   `json:"game_id" validate:"required"`
	Market  string   `json:"market" validate:"required,oneof=spreads totals h2h"`
	Side    string   `json:"side" validate:"omitempty,max=120"`
	Line    *float64 `json:"line"`
	Price   *int     `json:"price"`
}

func (h *Handler) RecordPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no authenticated user", usecase.ErrUnauthorized))
		return
	}

	var payload recordPickRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.pickService.Record(ctx, usecase.RecordPickInput{
		UserID:  principal.UserID,
		GroupID: payload.GroupID,
		GameID:  payload.GameID,
		Market:  payload.Market,
		Side:    payload.Side,
		Line:    payload.Line,
		Price:   payload.Price,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record pick failed",
			"user_id", principal.UserID,
			"game_id", payload.GameID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(saved))
}

func (h *Handler) ListMyPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPicks")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no authenticated user", usecase.ErrUnauthorized))
		return
	}

	query := r.URL.Query()
	week, err := strconv.Atoi(query.Get("week"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: week query parameter must be a number", usecase.ErrInvalidInput))
		return
	}

	picks, err := h.pickService.ListForUser(ctx, usecase.ListPicksInput{
		UserID:  principal.UserID,
		GroupID: query.Get("group_id"),
		Sport:   game.Sport(query.Get("sport")),
		Week:    week,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list picks failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pickDTO, 0, len(picks))
	for _, item := range picks {
		items = append(items, pickToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
