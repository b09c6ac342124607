// internal/api/bank_handler.go
package api

import (
	"net/http"
	"strconv"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
	"github.com/ccse-trainer/backend/internal/domain/scoring"
)

// ── Request / Response types ────────────────────────────────────────────────

type TextResponse struct {
	Primary   string `json:"primary" example:"España es…"`
	Localized string `json:"localized" example:"Испания — это…"`
}

type OptionResponse struct {
	Label string       `json:"label" example:"a"`
	Text  TextResponse `json:"text"`
}

type QuestionResponse struct {
	ID           int              `json:"id" example:"1001"`
	Section      int              `json:"section" example:"1"`
	Prompt       TextResponse     `json:"prompt"`
	Options      []OptionResponse `json:"options"`
	CorrectLabel string           `json:"correct_label" example:"a"`
	Status       scoring.Status   `json:"status" example:"learning"`
}

type SectionResponse struct {
	Section   int          `json:"section" example:"1"`
	Title     TextResponse `json:"title"`
	Questions int          `json:"questions" example:"120"`
}

type BankResponse struct {
	Total    int               `json:"total" example:"300"`
	Sections []SectionResponse `json:"sections"`
}

func toText(t questionbank.Text) TextResponse {
	return TextResponse{Primary: t.Primary, Localized: t.Localized}
}

func (h *Handler) toQuestionResponse(q *questionbank.Question) (QuestionResponse, error) {
	status, err := h.scores.Status(q.ID)
	if err != nil {
		return QuestionResponse{}, err
	}

	resp := QuestionResponse{
		ID:           q.ID,
		Section:      questionbank.SectionOf(q.ID),
		Prompt:       toText(q.Prompt),
		CorrectLabel: q.CorrectLabel,
		Status:       status,
	}
	for _, opt := range q.Options {
		resp.Options = append(resp.Options, OptionResponse{Label: opt.Label, Text: toText(opt.Text)})
	}
	return resp, nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getBank summarizes the question bank.
// @Summary      Get the bank summary
// @Description  Returns the question total and the five exam sections with their bilingual titles.
// @Tags         Bank
// @Produce      json
// @Success      200  {object}  BankResponse
// @Router       /bank [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	resp := BankResponse{Total: h.bank.Len()}
	for _, section := range questionbank.SectionNumbers() {
		title, _ := questionbank.SectionTitle(section)
		resp.Sections = append(resp.Sections, SectionResponse{
			Section:   section,
			Title:     toText(title),
			Questions: len(h.bank.SectionIDs(section)),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// listSectionQuestions lists one section of the bank.
// @Summary      List a section's questions
// @Tags         Bank
// @Produce      json
// @Param        section  path      int  true  "Section number (1-5)"
// @Success      200      {array}   QuestionResponse
// @Failure      404      {object}  map[string]string
// @Router       /bank/sections/{section}/questions [get]
func (h *Handler) listSectionQuestions(w http.ResponseWriter, r *http.Request) {
	section, err := strconv.Atoi(r.PathValue("section"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid section")
		return
	}
	ids := h.bank.SectionIDs(section)
	if len(ids) == 0 {
		respondError(w, http.StatusNotFound, "section not found")
		return
	}

	questions := make([]QuestionResponse, 0, len(ids))
	for _, id := range ids {
		q, _ := h.bank.Question(id)
		resp, err := h.toQuestionResponse(q)
		if h.handleServiceError(w, err) {
			return
		}
		questions = append(questions, resp)
	}
	respondJSON(w, http.StatusOK, questions)
}

// getQuestion returns a single question with its practice status.
// @Summary      Get a question
// @Tags         Bank
// @Produce      json
// @Param        questionID  path      int  true  "Question ID"
// @Success      200         {object}  QuestionResponse
// @Failure      404         {object}  map[string]string
// @Router       /bank/questions/{questionID} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("questionID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid question id")
		return
	}
	q, ok := h.bank.Question(id)
	if !ok {
		respondError(w, http.StatusNotFound, "question not found")
		return
	}

	resp, err := h.toQuestionResponse(q)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
