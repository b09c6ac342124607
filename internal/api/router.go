// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux using Go 1.22 method
// patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Question bank (read-only; the bank is produced offline)
	mux.HandleFunc("GET /bank", h.getBank)
	mux.HandleFunc("GET /bank/sections/{section}/questions", h.listSectionQuestions)
	mux.HandleFunc("GET /bank/questions/{questionID}", h.getQuestion)

	// Quiz sessions (at most one active)
	mux.HandleFunc("POST /sessions", h.startSession)
	mux.HandleFunc("GET /sessions/current", h.currentSession)
	mux.HandleFunc("POST /sessions/current/answers", h.answerSession)
	mux.HandleFunc("POST /sessions/current/navigate", h.navigateSession)
	mux.HandleFunc("POST /sessions/current/flags", h.flagSession)
	mux.HandleFunc("POST /sessions/current/submit", h.submitSession)
	mux.HandleFunc("DELETE /sessions/current", h.abandonSession)

	// Practice mode
	mux.HandleFunc("POST /practice/next", h.nextPractice)
	mux.HandleFunc("POST /practice/answers", h.answerPractice)
	mux.HandleFunc("DELETE /practice", h.exitPractice)

	// Study mode
	mux.HandleFunc("POST /study/answers", h.answerStudy)

	// Scores
	mux.HandleFunc("GET /scores", h.listScores)
	mux.HandleFunc("GET /scores/stats", h.scoreStats)
	mux.HandleFunc("DELETE /scores", h.resetScores)
}
