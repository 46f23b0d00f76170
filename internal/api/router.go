package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Questions
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("POST /questions/import", h.importQuestions)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("POST /sessions/{sessionID}/draw", h.drawQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/judgment", h.judgeQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/reset", h.resetStats)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)

	// Stats
	mux.HandleFunc("GET /stats/most-missed", h.mostMissed)
	mux.HandleFunc("GET /stats/overview", h.statsOverview)
}
