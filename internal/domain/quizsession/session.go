package quizsession

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
)

// State of the session machine: Configuring → Active → Submitted or
// Abandoned. Configuring exists only as a Config value; a Session is
// born Active.
type State string

const (
	StateActive    State = "active"
	StateSubmitted State = "submitted"
	StateAbandoned State = "abandoned"
)

var (
	ErrNotActive            = errors.New("session is not active")
	ErrQuestionNotInSession = errors.New("question is not part of this session")
	ErrEmptyPool            = errors.New("question pool is empty")
)

// Session is one quiz attempt. The question order is fixed at start;
// answers are keyed by question id with last-write-wins semantics.
type Session struct {
	ID           string
	Config       Config
	QuestionIDs  []int
	Answers      map[int]string
	Flagged      map[int]bool
	CurrentIndex int
	StartTime    time.Time

	state   State
	members map[int]bool
}

// Start materializes a session from the bank and a validated config:
// the chosen pool, optionally shuffled without reinsertion, truncated
// to the requested count (clamped to the pool size).
func Start(bank *questionbank.Bank, cfg Config, rng *rand.Rand, now time.Time) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var pool []int
	switch cfg.Scope {
	case ScopeSection:
		pool = bank.SectionIDs(cfg.Section)
	default:
		pool = bank.IDs()
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	if cfg.Shuffle {
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	if cfg.Scope == ScopeCustom && cfg.Count < len(pool) {
		pool = pool[:cfg.Count]
	}

	s := &Session{
		ID:          uuid.NewString(),
		Config:      cfg,
		QuestionIDs: pool,
		Answers:     make(map[int]string),
		Flagged:     make(map[int]bool),
		StartTime:   now,
		state:       StateActive,
	}
	s.index()
	return s, nil
}

func (s *Session) index() {
	s.members = make(map[int]bool, len(s.QuestionIDs))
	for _, id := range s.QuestionIDs {
		s.members[id] = true
	}
}

func (s *Session) State() State {
	return s.state
}

// Answer records the chosen label for a question. Only one answer is
// live per id; answering again overwrites.
func (s *Session) Answer(questionID int, label string) error {
	if s.state != StateActive {
		return ErrNotActive
	}
	if !s.members[questionID] {
		return ErrQuestionNotInSession
	}
	s.Answers[questionID] = label
	return nil
}

// Navigate moves the current-question pointer, clamped to the valid
// range. Stepping past either end is a no-op.
func (s *Session) Navigate(delta int) error {
	if s.state != StateActive {
		return ErrNotActive
	}
	next := s.CurrentIndex + delta
	if next < 0 {
		next = 0
	}
	if next > len(s.QuestionIDs)-1 {
		next = len(s.QuestionIDs) - 1
	}
	s.CurrentIndex = next
	return nil
}

// Flag toggles the review flag on a question.
func (s *Session) Flag(questionID int) error {
	if s.state != StateActive {
		return ErrNotActive
	}
	if !s.members[questionID] {
		return ErrQuestionNotInSession
	}
	if s.Flagged[questionID] {
		delete(s.Flagged, questionID)
	} else {
		s.Flagged[questionID] = true
	}
	return nil
}

// Submit moves the session to its terminal graded state. Grading and
// score-store side effects belong to the caller.
func (s *Session) Submit() error {
	if s.state != StateActive {
		return ErrNotActive
	}
	s.state = StateSubmitted
	return nil
}

// Abandon exits the session before submission, with no grading side
// effects.
func (s *Session) Abandon() error {
	if s.state != StateActive {
		return ErrNotActive
	}
	s.state = StateAbandoned
	return nil
}

// Duration returns the configured countdown, if any.
func (s *Session) Duration() (time.Duration, bool) {
	return s.Config.Duration(len(s.QuestionIDs))
}

// Remaining derives the time left from the start time and the
// configured duration. It is always recomputed, never read from a
// stored countdown, so a restored session cannot drift.
func (s *Session) Remaining(now time.Time) (time.Duration, bool) {
	d, ok := s.Duration()
	if !ok {
		return 0, false
	}
	remaining := d - now.Sub(s.StartTime)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// Elapsed is the time spent in the session so far.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

// Snapshot is the persisted form of a session. StartTime is kept as
// Unix milliseconds so the restore path re-derives the remaining time
// from the wall clock.
type Snapshot struct {
	ID           string         `json:"id"`
	Config       Config         `json:"config"`
	QuestionIDs  []int          `json:"questions"`
	Answers      map[int]string `json:"answers"`
	Flagged      []int          `json:"flagged"`
	CurrentIndex int            `json:"currentIndex"`
	StartTimeMs  int64          `json:"startTime"`
}

// Snapshot captures the live state for persistence. Only active
// sessions are snapshotted; terminal states clear the persisted record
// instead.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:           s.ID,
		Config:       s.Config,
		QuestionIDs:  append([]int(nil), s.QuestionIDs...),
		Answers:      make(map[int]string, len(s.Answers)),
		Flagged:      make([]int, 0, len(s.Flagged)),
		CurrentIndex: s.CurrentIndex,
		StartTimeMs:  s.StartTime.UnixMilli(),
	}
	for id, label := range s.Answers {
		snap.Answers[id] = label
	}
	for _, id := range s.QuestionIDs {
		if s.Flagged[id] {
			snap.Flagged = append(snap.Flagged, id)
		}
	}
	return snap
}

// Restore rebuilds an active session from its snapshot, validating it
// against the current bank. A snapshot referencing unknown questions is
// stale and rejected; the caller discards it.
func Restore(snap Snapshot, bank *questionbank.Bank) (*Session, error) {
	if len(snap.QuestionIDs) == 0 {
		return nil, errors.New("snapshot has no questions")
	}
	for _, id := range snap.QuestionIDs {
		if _, ok := bank.Question(id); !ok {
			return nil, fmt.Errorf("snapshot references unknown question %d", id)
		}
	}

	s := &Session{
		ID:           snap.ID,
		Config:       snap.Config,
		QuestionIDs:  append([]int(nil), snap.QuestionIDs...),
		Answers:      make(map[int]string),
		Flagged:      make(map[int]bool),
		CurrentIndex: snap.CurrentIndex,
		StartTime:    time.UnixMilli(snap.StartTimeMs),
		state:        StateActive,
	}
	s.index()

	for id, label := range snap.Answers {
		if !s.members[id] {
			return nil, fmt.Errorf("snapshot answer for question %d outside the session", id)
		}
		s.Answers[id] = label
	}
	for _, id := range snap.Flagged {
		if s.members[id] {
			s.Flagged[id] = true
		}
	}

	if s.CurrentIndex < 0 {
		s.CurrentIndex = 0
	}
	if s.CurrentIndex > len(s.QuestionIDs)-1 {
		s.CurrentIndex = len(s.QuestionIDs) - 1
	}
	return s, nil
}
