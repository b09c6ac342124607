// internal/api/score_handler.go
package api

import (
	"net/http"
	"strconv"

	"github.com/ccse-trainer/backend/internal/domain/scoring"
)

// ── Response types ──────────────────────────────────────────────────────────

type ScoreResponse struct {
	QuestionID       int            `json:"question_id" example:"1001"`
	Score            int            `json:"score" example:"-3"`
	ConsecutiveWrong int            `json:"consecutive_wrong" example:"1"`
	Status           scoring.Status `json:"status" example:"needs_work"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listScores returns every recorded score entry.
// @Summary      List question scores
// @Tags         Scores
// @Produce      json
// @Success      200  {array}  ScoreResponse
// @Router       /scores [get]
func (h *Handler) listScores(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scores.All()
	if h.handleServiceError(w, err) {
		return
	}

	scores := make([]ScoreResponse, 0, len(entries))
	for id, entry := range entries {
		e := entry
		scores = append(scores, ScoreResponse{
			QuestionID:       id,
			Score:            e.Score,
			ConsecutiveWrong: e.ConsecutiveWrong,
			Status:           scoring.StatusOf(&e),
		})
	}
	respondJSON(w, http.StatusOK, scores)
}

// scoreStats summarizes the whole bank into status buckets.
// @Summary      Get score statistics
// @Description  Counts every bank question as needing practice, mastered or not attempted. NeedsPractice doubles as the practice badge count.
// @Tags         Scores
// @Produce      json
// @Success      200  {object}  store.Stats
// @Router       /scores/stats [get]
func (h *Handler) scoreStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.scores.StatsFor(h.bank.IDs())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// resetScores wipes all recorded progress. Destructive, so the caller
// must pass confirm=true explicitly.
// @Summary      Reset all scores
// @Tags         Scores
// @Param        confirm  query  bool  true  "Must be true"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /scores [delete]
func (h *Handler) resetScores(w http.ResponseWriter, r *http.Request) {
	confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if !confirm {
		respondError(w, http.StatusBadRequest, "pass confirm=true to reset all scores")
		return
	}

	if h.handleServiceError(w, h.scores.ResetAll()) {
		return
	}
	h.logger.Info("all question scores reset")
	w.WriteHeader(http.StatusNoContent)
}
