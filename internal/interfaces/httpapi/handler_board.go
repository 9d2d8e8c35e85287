package httpapi

import "net/http"

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoard")
	defer span.End()

	sport := r.PathValue("sport")
	board, err := h.boardService.Board(ctx, sport)
	if err != nil {
		h.logger.WarnContext(ctx, "get board failed", "sport", sport, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(board))
}

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBoards")
	defer span.End()

	boards, err := h.boardService.Boards(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list boards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]boardDTO, 0, len(boards))
	for _, board := range boards {
		items = append(items, boardToDTO(board))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
