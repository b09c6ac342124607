package scoring

// Entry tracks how well the user knows a single question. An entry does
// not exist until the question has been answered at least once; the
// score is unbounded in both directions.
type Entry struct {
	Score            int `json:"score"`
	ConsecutiveWrong int `json:"consecutiveWrong"`
}

// PenaltyFor returns the score penalty for the n-th consecutive wrong
// answer: -2 for the first miss, -3 for the second, -4 from the third
// on. A single slip is cheap; a repeated pattern of misses drops the
// question into the struggling band quickly.
func PenaltyFor(consecutiveWrong int) int {
	switch {
	case consecutiveWrong <= 1:
		return -2
	case consecutiveWrong == 2:
		return -3
	default:
		return -4
	}
}

// Record applies one answer outcome to the entry.
func (e *Entry) Record(correct bool) {
	if correct {
		e.Score++
		e.ConsecutiveWrong = 0
		return
	}
	e.ConsecutiveWrong++
	e.Score += PenaltyFor(e.ConsecutiveWrong)
}

// Status is the practice-priority band derived from an entry's score.
type Status string

const (
	StatusNotAttempted Status = "not_attempted"
	StatusStruggling   Status = "struggling" // score < -4
	StatusNeedsWork    Status = "needs_work" // -4 <= score <= -1
	StatusLearning     Status = "learning"   // 0 <= score <= 1
	StatusMastered     Status = "mastered"   // score >= 2
)

// StatusOf derives the band for an entry; nil means never attempted.
func StatusOf(e *Entry) Status {
	if e == nil {
		return StatusNotAttempted
	}
	switch {
	case e.Score < -4:
		return StatusStruggling
	case e.Score <= -1:
		return StatusNeedsWork
	case e.Score <= 1:
		return StatusLearning
	default:
		return StatusMastered
	}
}

// NeedsPractice reports whether the entry belongs in the practice pool:
// attempted at least once and not yet mastered.
func NeedsPractice(e *Entry) bool {
	return e != nil && e.Score < 2
}
