// internal/service/study.go
package service

import (
	"errors"
	"log/slog"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
	"github.com/ccse-trainer/backend/internal/domain/scoring"
	"github.com/ccse-trainer/backend/internal/store"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrUnknownLabel    = errors.New("label matches no option")
)

// Answered is the immediate feedback for a single answered question:
// study mode and practice mode share it.
type Answered struct {
	QuestionID   int            `json:"question_id"`
	ChosenLabel  string         `json:"chosen_label"`
	CorrectLabel string         `json:"correct_label"`
	IsCorrect    bool           `json:"is_correct"`
	Score        scoring.Entry  `json:"score"`
	Status       scoring.Status `json:"status"`
}

// StudyService grades single answers outside any session, revealing
// the correct label right away and recording the outcome.
type StudyService struct {
	bank   *questionbank.Bank
	scores *store.ScoreStore
	logger *slog.Logger
}

func NewStudyService(bank *questionbank.Bank, scores *store.ScoreStore, logger *slog.Logger) *StudyService {
	return &StudyService{bank: bank, scores: scores, logger: logger}
}

func (s *StudyService) Answer(questionID int, label string) (Answered, error) {
	return answerQuestion(s.bank, s.scores, questionID, label)
}

func answerQuestion(bank *questionbank.Bank, scores *store.ScoreStore, questionID int, label string) (Answered, error) {
	q, ok := bank.Question(questionID)
	if !ok {
		return Answered{}, ErrUnknownQuestion
	}
	if _, ok := q.Option(label); !ok {
		return Answered{}, ErrUnknownLabel
	}

	correct := label == q.CorrectLabel
	entry, err := scores.RecordAnswer(questionID, correct)
	if err != nil {
		return Answered{}, err
	}

	return Answered{
		QuestionID:   questionID,
		ChosenLabel:  label,
		CorrectLabel: q.CorrectLabel,
		IsCorrect:    correct,
		Score:        entry,
		Status:       scoring.StatusOf(&entry),
	}, nil
}
