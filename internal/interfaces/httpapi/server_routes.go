package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/sports/{sport}/weeks", handler.ListWeekWindows)
	mux.HandleFunc("GET /v1/sports/{sport}/weeks/current", handler.GetCurrentWeek)
	mux.HandleFunc("GET /v1/sports/{sport}/weeks/{week}/games", handler.ListGamesByWeek)
	mux.HandleFunc("GET /v1/sports/{sport}/board", handler.GetBoard)
	mux.HandleFunc("GET /v1/boards", handler.ListBoards)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("PUT /v1/picks", RequireUser(http.HandlerFunc(handler.RecordPick)))
	mux.Handle("GET /v1/picks", RequireUser(http.HandlerFunc(handler.ListMyPicks)))
}
