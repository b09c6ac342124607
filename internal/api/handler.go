// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
	"github.com/ccse-trainer/backend/internal/domain/quizsession"
	"github.com/ccse-trainer/backend/internal/service"
	"github.com/ccse-trainer/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers. Instead of
// relying on package-level globals, every handler method receives its
// dependencies through this struct.
type Handler struct {
	bank     *questionbank.Bank
	sessions *service.SessionService
	practice *service.PracticeService
	study    *service.StudyService
	scores   *store.ScoreStore
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	bank *questionbank.Bank,
	sessions *service.SessionService,
	practice *service.PracticeService,
	study *service.StudyService,
	scores *store.ScoreStore,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bank:     bank,
		sessions: sessions,
		practice: practice,
		study:    study,
		scores:   scores,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (after
// responding) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// validatable is implemented by request types with field constraints.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes and validates the request body.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validatable) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps engine errors onto HTTP responses. Returns
// true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, service.ErrNoSession):
		respondError(w, http.StatusNotFound, "no active session")
	case errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, quizsession.ErrQuestionNotInSession):
		respondError(w, http.StatusNotFound, "question not found")
	case errors.Is(err, service.ErrUnknownLabel):
		respondError(w, http.StatusBadRequest, "label matches no option")
	case errors.Is(err, quizsession.ErrNotActive):
		respondError(w, http.StatusConflict, "session is not active")
	default:
		h.logger.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
