package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/nations", handler.ListNations)
	mux.HandleFunc("GET /v1/nations/{nationID}/leagues", handler.ListLeaguesByNation)
	mux.HandleFunc("GET /v1/nations/{nationID}/strength", handler.GetNationStrength)
	mux.HandleFunc("GET /v1/nations/strength", handler.GetNationStrengthLeaderboard)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/seasons", handler.ListSeasonsByLeague)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeasonTable)
	mux.HandleFunc("GET /v1/clubs/{clubID}/career", handler.GetClubCareer)
	mux.HandleFunc("GET /v1/rankings/locations/{level}", handler.GetLocationRankings)
	mux.HandleFunc("GET /v1/rankings/locations/{level}/{location}/form", handler.GetLocationRecentForm)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/leagues/{leagueID}/seasons", RequireAdminToken(adminToken, http.HandlerFunc(handler.SubmitSeason)))
	mux.Handle("POST /v1/internal/jobs/stability-recalc", RequireAdminToken(adminToken, http.HandlerFunc(handler.RecalculateStability)))
}
