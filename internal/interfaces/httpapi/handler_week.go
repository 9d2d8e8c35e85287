package httpapi

import "net/http"

func (h *Handler) GetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentWeek")
	defer span.End()

	sport := r.PathValue("sport")
	week, err := h.scheduleService.CurrentWeek(ctx, sport)
	if err != nil {
		h.logger.WarnContext(ctx, "get current week failed", "sport", sport, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"sport": sport,
		"week":  week,
	})
}

func (h *Handler) ListWeekWindows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeekWindows")
	defer span.End()

	sport := r.PathValue("sport")
	windows, err := h.scheduleService.Windows(ctx, sport)
	if err != nil {
		h.logger.WarnContext(ctx, "list week windows failed", "sport", sport, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]weekWindowDTO, 0, len(windows))
	for _, window := range windows {
		items = append(items, weekWindowToDTO(window))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
