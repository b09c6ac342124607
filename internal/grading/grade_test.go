package grading_test

import (
	"testing"
	"time"

	"github.com/ccse-trainer/backend/internal/grading"
)

// key answers "a" for every question.
func allA(int) (string, bool) { return "a", true }

func TestGrade_CountsOnlyMatchingLabels(t *testing.T) {
	ids := []int{1001, 1002, 1003}
	answers := map[int]string{1001: "a", 1002: "b", 1003: "a"}

	results := grading.Grade(ids, answers, allA, 0)

	if results.CorrectCount != 2 {
		t.Errorf("expected 2 correct, got %d", results.CorrectCount)
	}
	if results.TotalCount != 3 {
		t.Errorf("expected total 3, got %d", results.TotalCount)
	}
}

func TestGrade_UnansweredIsIncorrect(t *testing.T) {
	ids := []int{1001, 1002}
	results := grading.Grade(ids, map[int]string{1001: "a"}, allA, 0)

	if results.CorrectCount != 1 {
		t.Errorf("expected 1 correct, got %d", results.CorrectCount)
	}

	detail := results.PerQuestion[1]
	if detail.ID != 1002 {
		t.Fatalf("expected detail for 1002, got %d", detail.ID)
	}
	if detail.ChosenLabel != nil {
		t.Errorf("expected nil chosen label for unanswered question, got %q", *detail.ChosenLabel)
	}
	if detail.IsCorrect {
		t.Error("expected unanswered question graded incorrect")
	}
}

func TestGrade_PassExactlyAtThreshold(t *testing.T) {
	// 3 of 5 correct = 60.0%, the boundary passes.
	ids := []int{1001, 1002, 1003, 1004, 1005}
	answers := map[int]string{1001: "a", 1002: "a", 1003: "a", 1004: "b", 1005: "b"}

	results := grading.Grade(ids, answers, allA, 0)
	if results.Percentage != 60.0 {
		t.Errorf("expected 60.0%%, got %v", results.Percentage)
	}
	if !results.Passed {
		t.Error("expected exactly 60.0%% to pass")
	}

	// One fewer correct fails.
	delete(answers, 1003)
	results = grading.Grade(ids, answers, allA, 0)
	if results.Passed {
		t.Errorf("expected %v%% to fail", results.Percentage)
	}
}

func TestGrade_PercentageRoundedToOneDecimal(t *testing.T) {
	// 1 of 3 = 33.333... → 33.3
	results := grading.Grade([]int{1001, 1002, 1003}, map[int]string{1001: "a"}, allA, 0)
	if results.Percentage != 33.3 {
		t.Errorf("expected 33.3, got %v", results.Percentage)
	}

	// 2 of 3 = 66.666... → 66.7
	results = grading.Grade([]int{1001, 1002, 1003}, map[int]string{1001: "a", 1002: "a"}, allA, 0)
	if results.Percentage != 66.7 {
		t.Errorf("expected 66.7, got %v", results.Percentage)
	}
}

func TestGrade_SectionBreakdown(t *testing.T) {
	// Scenario: 3 questions in section 1, 2 in section 2; answer the
	// first correctly, the second incorrectly, leave the rest blank.
	ids := []int{1001, 1002, 1003, 2001, 2002}
	answers := map[int]string{1001: "a", 1002: "b"}

	results := grading.Grade(ids, answers, allA, 3*time.Minute)

	if results.CorrectCount != 1 || results.TotalCount != 5 {
		t.Errorf("expected 1/5, got %d/%d", results.CorrectCount, results.TotalCount)
	}
	if results.Percentage != 20.0 {
		t.Errorf("expected 20.0%%, got %v", results.Percentage)
	}
	if results.Passed {
		t.Error("expected fail")
	}

	sec1 := results.BySection[1]
	if sec1.Correct != 1 || sec1.Total != 3 {
		t.Errorf("section 1: expected 1/3, got %d/%d", sec1.Correct, sec1.Total)
	}
	sec2 := results.BySection[2]
	if sec2.Correct != 0 || sec2.Total != 2 {
		t.Errorf("section 2: expected 0/2, got %d/%d", sec2.Correct, sec2.Total)
	}

	if results.Elapsed != 3*time.Minute {
		t.Errorf("expected elapsed 3m, got %v", results.Elapsed)
	}
}

func TestGrade_EmptySession(t *testing.T) {
	results := grading.Grade(nil, nil, allA, 0)
	if results.Percentage != 0 || results.Passed {
		t.Errorf("expected empty session to score 0 and fail, got %+v", results)
	}
}
