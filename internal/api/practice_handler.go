// internal/api/practice_handler.go
package api

import "net/http"

// nextPractice draws the next weak question.
// @Summary      Pick the next practice question
// @Description  Returns a weighted pick from the questions still below mastery, avoiding the last few served ones. Done is set when nothing is eligible.
// @Tags         Practice
// @Produce      json
// @Success      200  {object}  service.Next
// @Router       /practice/next [post]
func (h *Handler) nextPractice(w http.ResponseWriter, r *http.Request) {
	next, err := h.practice.PickNext()
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, next)
}

// answerPractice grades a practice answer with immediate feedback.
// @Summary      Answer a practice question
// @Tags         Practice
// @Accept       json
// @Produce      json
// @Param        body  body      AnswerRequest  true  "Chosen label"
// @Success      200   {object}  service.Answered
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /practice/answers [post]
func (h *Handler) answerPractice(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	answered, err := h.practice.Answer(req.QuestionID, req.Label)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, answered)
}

// exitPractice leaves practice mode, clearing the recent-question
// buffer so a fresh entry starts unbiased.
// @Summary      Exit practice mode
// @Tags         Practice
// @Success      204
// @Router       /practice [delete]
func (h *Handler) exitPractice(w http.ResponseWriter, r *http.Request) {
	h.practice.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// answerStudy grades a single answer outside any session, revealing
// the correct label right away.
// @Summary      Answer a question in study mode
// @Tags         Study
// @Accept       json
// @Produce      json
// @Param        body  body      AnswerRequest  true  "Chosen label"
// @Success      200   {object}  service.Answered
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /study/answers [post]
func (h *Handler) answerStudy(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	answered, err := h.study.Answer(req.QuestionID, req.Label)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, answered)
}
