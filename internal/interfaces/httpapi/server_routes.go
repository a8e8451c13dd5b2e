package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/scoreboard", handler.GetScoreboard)
	mux.HandleFunc("GET /v1/rankings", handler.GetRankings)
	mux.HandleFunc("GET /v1/locks", handler.ListTeamLocks)
	mux.HandleFunc("GET /v1/roster", handler.ListRoster)
	mux.HandleFunc("GET /v1/results/winners", handler.ListWeeklyWinners)
	mux.HandleFunc("GET /v1/results/year-end", handler.ListYearEndResults)
	mux.HandleFunc("GET /v1/results/earnings", handler.ListEarnings)
	mux.HandleFunc("GET /v1/alerts", handler.GetAlerts)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/my-team", RequireAuth(verifier, http.HandlerFunc(handler.GetMyTeam)))
	mux.Handle("PUT /v1/my-team/tie-breakers", RequireAuth(verifier, http.HandlerFunc(handler.SaveTieBreakers)))
	mux.Handle("POST /v1/picks", RequireAuth(verifier, http.HandlerFunc(handler.SavePick)))
	mux.Handle("GET /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyProfile)))
	mux.Handle("PUT /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMyProfile)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/admin/seasons", RequireAdmin(verifier, http.HandlerFunc(handler.CreateSeason)))
	mux.Handle("POST /v1/admin/games", RequireAdmin(verifier, http.HandlerFunc(handler.AddGame)))
	mux.Handle("PUT /v1/admin/games/{gameID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateGame)))
	mux.Handle("DELETE /v1/admin/games/{gameID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteGame)))
	mux.Handle("POST /v1/admin/games/{gameID}/tie-break", RequireAdmin(verifier, http.HandlerFunc(handler.ToggleTieBreak)))
	mux.Handle("PUT /v1/admin/games/{gameID}/scores", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateFinalScores)))
	mux.Handle("PUT /v1/admin/winners", RequireAdmin(verifier, http.HandlerFunc(handler.UpsertWeeklyWinner)))
	mux.Handle("PUT /v1/admin/year-end-results", RequireAdmin(verifier, http.HandlerFunc(handler.UpsertYearEndResult)))
	mux.Handle("PUT /v1/admin/users/{userID}/flags", RequireAdmin(verifier, http.HandlerFunc(handler.SetUserFlags)))
	mux.Handle("PUT /v1/admin/alerts", RequireAdmin(verifier, http.HandlerFunc(handler.SaveAlerts)))
	mux.Handle("POST /v1/admin/broadcast", RequireAdmin(verifier, http.HandlerFunc(handler.SendBroadcast)))
}
