package scoring_test

import (
	"testing"

	"github.com/ccse-trainer/backend/internal/domain/scoring"
)

func TestPenaltyFor_Escalates(t *testing.T) {
	cases := []struct {
		consecutive int
		want        int
	}{
		{1, -2},
		{2, -3},
		{3, -4},
		{4, -4},
		{10, -4},
	}
	for _, c := range cases {
		if got := scoring.PenaltyFor(c.consecutive); got != c.want {
			t.Errorf("PenaltyFor(%d) = %d, want %d", c.consecutive, got, c.want)
		}
	}
}

func TestRecord_CorrectStreak(t *testing.T) {
	var e scoring.Entry
	for i := 0; i < 5; i++ {
		e.Record(true)
	}
	if e.Score != 5 {
		t.Errorf("expected score 5 after five correct answers, got %d", e.Score)
	}
	if e.ConsecutiveWrong != 0 {
		t.Errorf("expected consecutive wrong 0, got %d", e.ConsecutiveWrong)
	}
}

func TestRecord_ThreeMissesCompound(t *testing.T) {
	var e scoring.Entry
	e.Record(false)
	e.Record(false)
	e.Record(false)

	// -2 + -3 + -4
	if e.Score != -9 {
		t.Errorf("expected score -9 after three misses, got %d", e.Score)
	}
	if e.ConsecutiveWrong != 3 {
		t.Errorf("expected consecutive wrong 3, got %d", e.ConsecutiveWrong)
	}
	if scoring.StatusOf(&e) != scoring.StatusStruggling {
		t.Errorf("expected struggling status, got %s", scoring.StatusOf(&e))
	}
}

func TestRecord_CorrectResetsStreak(t *testing.T) {
	var e scoring.Entry
	e.Record(false)
	e.Record(false)
	e.Record(true)

	if e.ConsecutiveWrong != 0 {
		t.Errorf("expected streak reset, got %d", e.ConsecutiveWrong)
	}
	// -2 + -3 + 1
	if e.Score != -4 {
		t.Errorf("expected score -4, got %d", e.Score)
	}

	// The next miss starts a fresh streak at the cheapest penalty.
	e.Record(false)
	if e.Score != -6 {
		t.Errorf("expected score -6 after fresh miss, got %d", e.Score)
	}
}

func TestStatusOf_Bands(t *testing.T) {
	cases := []struct {
		score int
		want  scoring.Status
	}{
		{-9, scoring.StatusStruggling},
		{-5, scoring.StatusStruggling},
		{-4, scoring.StatusNeedsWork},
		{-1, scoring.StatusNeedsWork},
		{0, scoring.StatusLearning},
		{1, scoring.StatusLearning},
		{2, scoring.StatusMastered},
		{7, scoring.StatusMastered},
	}
	for _, c := range cases {
		e := &scoring.Entry{Score: c.score}
		if got := scoring.StatusOf(e); got != c.want {
			t.Errorf("StatusOf(score=%d) = %s, want %s", c.score, got, c.want)
		}
	}

	if scoring.StatusOf(nil) != scoring.StatusNotAttempted {
		t.Error("expected nil entry to map to not attempted")
	}
}

func TestNeedsPractice(t *testing.T) {
	if scoring.NeedsPractice(nil) {
		t.Error("unattempted question must not need practice")
	}
	if !scoring.NeedsPractice(&scoring.Entry{Score: 1}) {
		t.Error("learning question must need practice")
	}
	if !scoring.NeedsPractice(&scoring.Entry{Score: -9}) {
		t.Error("struggling question must need practice")
	}
	if scoring.NeedsPractice(&scoring.Entry{Score: 2}) {
		t.Error("mastered question must not need practice")
	}
}
