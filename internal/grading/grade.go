// internal/grading/grade.go
package grading

import (
	"math"
	"time"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
)

// passThreshold matches the real exam's passing bar.
const passThreshold = 60.0

// AnswerKey resolves a question id to its correct label. The bank is
// validated at load time, so a missing entry is a programming error,
// not a runtime condition.
type AnswerKey func(questionID int) (string, bool)

// QuestionResult is the per-question grading detail. ChosenLabel is nil
// when the question was left unanswered.
type QuestionResult struct {
	ID           int     `json:"id"`
	ChosenLabel  *string `json:"chosen_label"`
	CorrectLabel string  `json:"correct_label"`
	IsCorrect    bool    `json:"is_correct"`
}

// SectionResult accumulates correct/total per exam section. It feeds
// the breakdown display only, never the pass/fail decision.
type SectionResult struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Results is the immutable outcome of a graded session.
type Results struct {
	CorrectCount int                   `json:"correct_count"`
	TotalCount   int                   `json:"total_count"`
	Percentage   float64               `json:"percentage"`
	Passed       bool                  `json:"passed"`
	BySection    map[int]SectionResult `json:"by_section"`
	PerQuestion  []QuestionResult      `json:"per_question"`
	Elapsed      time.Duration         `json:"elapsed"`
}

// Grade scores a finished session against the answer key. Unanswered
// questions count as incorrect. Deterministic and side-effect free;
// feeding results into the score store is the caller's responsibility.
func Grade(questionIDs []int, answers map[int]string, key AnswerKey, elapsed time.Duration) Results {
	results := Results{
		TotalCount: len(questionIDs),
		BySection:  make(map[int]SectionResult),
		Elapsed:    elapsed,
	}

	for _, id := range questionIDs {
		correctLabel, _ := key(id)

		detail := QuestionResult{ID: id, CorrectLabel: correctLabel}
		if chosen, answered := answers[id]; answered {
			label := chosen
			detail.ChosenLabel = &label
			detail.IsCorrect = chosen == correctLabel
		}
		if detail.IsCorrect {
			results.CorrectCount++
		}

		section := questionbank.SectionOf(id)
		sec := results.BySection[section]
		sec.Total++
		if detail.IsCorrect {
			sec.Correct++
		}
		results.BySection[section] = sec

		results.PerQuestion = append(results.PerQuestion, detail)
	}

	if results.TotalCount > 0 {
		pct := float64(results.CorrectCount) / float64(results.TotalCount) * 100
		results.Percentage = math.Round(pct*10) / 10
	}
	results.Passed = results.Percentage >= passThreshold
	return results
}
