package quizsession

import (
	"errors"
	"time"
)

// Scope chooses the question pool for a session.
type Scope string

const (
	ScopeAll     Scope = "all"     // full bank
	ScopeSection Scope = "section" // one exam section
	ScopeCustom  Scope = "custom"  // an arbitrary count
)

// TimerPolicy chooses the countdown, if any.
type TimerPolicy string

const (
	TimerNone TimerPolicy = "none"
	// TimerFull is the real exam's 45 minutes regardless of count.
	TimerFull TimerPolicy = "full"
	// TimerProportional scales the 45 minutes to the session size at
	// the exam's per-question rate (45 min for the 300-question bank).
	TimerProportional TimerPolicy = "proportional"
)

const (
	fullExamDuration  = 45 * time.Minute
	fullExamQuestions = 300
)

// Config is the quiz configuration chosen while the session is being
// set up.
type Config struct {
	Scope   Scope       `json:"scope"`
	Section int         `json:"section,omitempty"` // used when Scope == section
	Count   int         `json:"count,omitempty"`   // used when Scope == custom
	Shuffle bool        `json:"shuffle"`
	Timer   TimerPolicy `json:"timer"`
}

// DefaultConfig is a full-bank, unshuffled, untimed session.
func DefaultConfig() Config {
	return Config{Scope: ScopeAll, Timer: TimerNone}
}

func (c Config) Validate() error {
	switch c.Scope {
	case ScopeAll:
	case ScopeSection:
		if c.Section < 1 || c.Section > 5 {
			return errors.New("section must be between 1 and 5")
		}
	case ScopeCustom:
		if c.Count <= 0 {
			return errors.New("count must be positive")
		}
	default:
		return errors.New("scope must be all, section, or custom")
	}

	switch c.Timer {
	case TimerNone, TimerFull, TimerProportional:
	default:
		return errors.New("timer must be none, full, or proportional")
	}
	return nil
}

// Duration returns the countdown for a session of the given size, and
// whether a timer applies at all.
func (c Config) Duration(questionCount int) (time.Duration, bool) {
	switch c.Timer {
	case TimerFull:
		return fullExamDuration, true
	case TimerProportional:
		minutes := (questionCount*45 + fullExamQuestions - 1) / fullExamQuestions
		if minutes < 1 {
			minutes = 1
		}
		return time.Duration(minutes) * time.Minute, true
	default:
		return 0, false
	}
}
