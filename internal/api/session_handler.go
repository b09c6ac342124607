// internal/api/session_handler.go
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ccse-trainer/backend/internal/domain/quizsession"
	"github.com/ccse-trainer/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	Scope   string `json:"scope" example:"custom"`
	Section int    `json:"section,omitempty" example:"3"`
	Count   int    `json:"count,omitempty" example:"25"`
	Shuffle bool   `json:"shuffle" example:"true"`
	Timer   string `json:"timer" example:"proportional"`
}

func (r *StartSessionRequest) Validate() error {
	cfg := r.config()
	return cfg.Validate()
}

func (r *StartSessionRequest) config() quizsession.Config {
	cfg := quizsession.Config{
		Scope:   quizsession.Scope(r.Scope),
		Section: r.Section,
		Count:   r.Count,
		Shuffle: r.Shuffle,
		Timer:   quizsession.TimerPolicy(r.Timer),
	}
	if r.Scope == "" {
		cfg.Scope = quizsession.ScopeAll
	}
	if r.Timer == "" {
		cfg.Timer = quizsession.TimerNone
	}
	return cfg
}

type AnswerRequest struct {
	QuestionID int    `json:"question_id" example:"1001"`
	Label      string `json:"label" example:"a"`
}

func (r *AnswerRequest) Validate() error {
	if r.QuestionID == 0 {
		return errors.New("question_id is required")
	}
	if r.Label == "" {
		return errors.New("label is required")
	}
	return nil
}

type NavigateRequest struct {
	Delta int `json:"delta" example:"1"`
}

type FlagRequest struct {
	QuestionID int `json:"question_id" example:"1001"`
}

// SessionResponse wraps the session view; when a submission was forced
// by the countdown, Outcome is set instead of Session.
type SessionResponse struct {
	Session *service.View    `json:"session,omitempty"`
	Outcome *service.Outcome `json:"outcome,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession begins a new quiz session.
// @Summary      Start a session
// @Description  Materializes a session from the chosen scope, shuffle flag and timer policy, replacing any active session.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      StartSessionRequest  true  "Session configuration"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.sessions.Start(req.config(), time.Now())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, SessionResponse{Session: &view})
}

// currentSession returns the active session, restoring a persisted one
// after a restart. An expired restored session is submitted instead and
// its outcome returned with a time-expired notice.
// @Summary      Get the current session
// @Tags         Sessions
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string  "no active session"
// @Router       /sessions/current [get]
func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	view, outcome, err := h.sessions.Current(time.Now())
	if h.handleServiceError(w, err) {
		return
	}
	if outcome != nil {
		respondJSON(w, http.StatusOK, SessionResponse{Outcome: outcome})
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{Session: &view})
}

// answerSession records an answer; answering again overwrites.
// @Summary      Answer a session question
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      AnswerRequest  true  "Chosen label"
// @Success      200   {object}  SessionResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "session is not active"
// @Router       /sessions/current/answers [post]
func (h *Handler) answerSession(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.sessions.Answer(req.QuestionID, req.Label, time.Now())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{Session: &view})
}

// navigateSession moves the current-question pointer.
// @Summary      Navigate the session
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      NavigateRequest  true  "Offset, usually +1 or -1"
// @Success      200   {object}  SessionResponse
// @Failure      404   {object}  map[string]string
// @Router       /sessions/current/navigate [post]
func (h *Handler) navigateSession(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.sessions.Navigate(req.Delta, time.Now())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{Session: &view})
}

// flagSession toggles the review flag on a question.
// @Summary      Flag a question for review
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      FlagRequest  true  "Question to toggle"
// @Success      200   {object}  SessionResponse
// @Failure      404   {object}  map[string]string
// @Router       /sessions/current/flags [post]
func (h *Handler) flagSession(w http.ResponseWriter, r *http.Request) {
	var req FlagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.sessions.Flag(req.QuestionID, time.Now())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{Session: &view})
}

// submitSession grades the session. Answered questions feed the score
// store; unanswered ones count as incorrect without becoming misses.
// @Summary      Submit the session
// @Tags         Sessions
// @Produce      json
// @Success      200  {object}  service.Outcome
// @Failure      404  {object}  map[string]string
// @Router       /sessions/current/submit [post]
func (h *Handler) submitSession(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.sessions.Submit(time.Now())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

// abandonSession exits without grading.
// @Summary      Abandon the session
// @Tags         Sessions
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/current [delete]
func (h *Handler) abandonSession(w http.ResponseWriter, r *http.Request) {
	if h.handleServiceError(w, h.sessions.Abandon()) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
