package service_test

import (
	"testing"

	"github.com/ccse-trainer/backend/internal/domain/scoring"
	"github.com/ccse-trainer/backend/internal/service"
	"github.com/ccse-trainer/backend/internal/store"
)

func newPractice(t *testing.T) (*service.PracticeService, *store.ScoreStore) {
	t.Helper()
	kv := store.NewMemory()
	logger := testLogger()
	bank := testBank(t)
	scores := store.NewScoreStore(kv, logger)
	return service.NewPracticeService(bank, scores, logger), scores
}

func TestPickNext_NothingAttempted(t *testing.T) {
	practice, _ := newPractice(t)

	next, err := practice.PickNext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.Done || !next.NothingAttempted {
		t.Errorf("expected done with nothing attempted, got %+v", next)
	}
}

func TestPickNext_AllMastered(t *testing.T) {
	practice, scores := newPractice(t)
	scores.RecordAnswer(1001, true)
	scores.RecordAnswer(1001, true)

	next, err := practice.PickNext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.Done {
		t.Errorf("expected done, got %+v", next)
	}
	if next.NothingAttempted {
		t.Error("expected the congratulations case, not the empty-store case")
	}
}

func TestPickNext_ServesWeakQuestion(t *testing.T) {
	practice, scores := newPractice(t)
	scores.RecordAnswer(1002, false)

	next, err := practice.PickNext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Done || next.Question == nil {
		t.Fatalf("expected a question, got %+v", next)
	}
	if next.Question.ID != 1002 {
		t.Errorf("expected question 1002, got %d", next.Question.ID)
	}
	if next.EligibleCount != 1 {
		t.Errorf("expected eligible count 1, got %d", next.EligibleCount)
	}
}

func TestAnswer_MasteryRemovesFromPool(t *testing.T) {
	practice, _ := newPractice(t)

	// One correct answer: learning, still eligible.
	answered, err := practice.Answer(1001, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !answered.IsCorrect || answered.Status != scoring.StatusLearning {
		t.Errorf("expected a correct learning answer, got %+v", answered)
	}

	next, _ := practice.PickNext()
	if next.Done {
		t.Fatal("expected the learning question to remain eligible")
	}

	// Second correct answer: mastered, gone from the pool immediately.
	answered, _ = practice.Answer(1001, "a")
	if answered.Status != scoring.StatusMastered {
		t.Errorf("expected mastered, got %s", answered.Status)
	}

	next, _ = practice.PickNext()
	if !next.Done {
		t.Errorf("expected the pool to be empty after mastery, got %+v", next)
	}
}

func TestAnswer_WrongThreeTimesIsStruggling(t *testing.T) {
	practice, _ := newPractice(t)

	var answered service.Answered
	for i := 0; i < 3; i++ {
		var err error
		answered, err = practice.Answer(1003, "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answered.IsCorrect {
			t.Fatal("expected a wrong answer")
		}
	}

	if answered.Score.Score != -9 {
		t.Errorf("expected score -9 after three misses, got %d", answered.Score.Score)
	}
	if answered.Status != scoring.StatusStruggling {
		t.Errorf("expected struggling, got %s", answered.Status)
	}
	if answered.CorrectLabel != "a" {
		t.Errorf("expected revealed correct label a, got %q", answered.CorrectLabel)
	}
}

func TestAnswer_Validation(t *testing.T) {
	practice, _ := newPractice(t)

	if _, err := practice.Answer(9999, "a"); err != service.ErrUnknownQuestion {
		t.Errorf("expected ErrUnknownQuestion, got %v", err)
	}
	if _, err := practice.Answer(1001, "c"); err != service.ErrUnknownLabel {
		t.Errorf("expected ErrUnknownLabel for a binary question, got %v", err)
	}
}

func TestStudyAnswer_RecordsScore(t *testing.T) {
	kv := store.NewMemory()
	logger := testLogger()
	bank := testBank(t)
	scores := store.NewScoreStore(kv, logger)
	study := service.NewStudyService(bank, scores, logger)

	answered, err := study.Answer(2001, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answered.IsCorrect {
		t.Error("expected a wrong answer")
	}

	entry, _ := scores.Entry(2001)
	if entry == nil || entry.Score != -2 {
		t.Errorf("expected study mode to record the miss, got %+v", entry)
	}
}
