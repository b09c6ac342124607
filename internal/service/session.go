// internal/service/session.go
package service

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
	"github.com/ccse-trainer/backend/internal/domain/quizsession"
	"github.com/ccse-trainer/backend/internal/grading"
	"github.com/ccse-trainer/backend/internal/store"
	"github.com/ccse-trainer/backend/internal/timer"
)

var ErrNoSession = errors.New("no active session")

// Outcome is the result of a submitted session. TimeExpired marks a
// submission forced by the countdown rather than the user.
type Outcome struct {
	Results     grading.Results `json:"results"`
	TimeExpired bool            `json:"time_expired"`
}

// SessionService owns the single active quiz session. Every mutating
// operation persists the session snapshot before returning, so a crash
// can always offer to resume. Handlers run concurrently, hence the
// mutex; within it every operation is synchronous.
type SessionService struct {
	bank     *questionbank.Bank
	sessions *store.SessionStore
	scores   *store.ScoreStore
	logger   *slog.Logger
	rng      *rand.Rand

	mu          sync.Mutex
	current     *quizsession.Session
	countdown   timer.Timer
	lastOutcome *Outcome // set by a forced submission, consumed by Current
}

func NewSessionService(bank *questionbank.Bank, sessions *store.SessionStore, scores *store.ScoreStore, logger *slog.Logger) *SessionService {
	return &SessionService{
		bank:     bank,
		sessions: sessions,
		scores:   scores,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// View is the session state exposed to the API layer.
type View struct {
	ID           string             `json:"id"`
	Config       quizsession.Config `json:"config"`
	QuestionIDs  []int              `json:"questions"`
	Answers      map[int]string     `json:"answers"`
	Flagged      []int              `json:"flagged"`
	CurrentIndex int                `json:"current_index"`
	RemainingSec *int               `json:"remaining_sec,omitempty"`
	Warning      bool               `json:"warning"`
}

func (s *SessionService) view(now time.Time) View {
	snap := s.current.Snapshot()
	v := View{
		ID:           snap.ID,
		Config:       snap.Config,
		QuestionIDs:  snap.QuestionIDs,
		Answers:      snap.Answers,
		Flagged:      snap.Flagged,
		CurrentIndex: snap.CurrentIndex,
	}
	if remaining, ok := s.current.Remaining(now); ok {
		sec := int(remaining / time.Second)
		v.RemainingSec = &sec
		v.Warning = s.countdown.Warning(now)
	}
	return v
}

// Start begins a new session, replacing and discarding any active one.
func (s *SessionService) Start(cfg quizsession.Config, now time.Time) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.logger.Info("abandoning previous session", "session_id", s.current.ID)
		s.current.Abandon()
		s.countdown.Stop()
		s.current = nil
	}
	s.lastOutcome = nil

	session, err := quizsession.Start(s.bank, cfg, s.rng, now)
	if err != nil {
		return View{}, err
	}
	s.current = session

	if d, ok := session.Duration(); ok {
		s.countdown.Start(d, session.StartTime)
	}

	if err := s.persist(); err != nil {
		return View{}, err
	}
	s.logger.Info("session started",
		"session_id", session.ID,
		"questions", len(session.QuestionIDs),
		"timer", cfg.Timer,
	)
	return s.view(now), nil
}

// Current returns the active session, restoring a persisted one if the
// process restarted. A restored session whose countdown already ran out
// is submitted immediately; the resulting outcome is returned instead
// of a view, exactly once.
func (s *SessionService) Current(now time.Time) (View, *Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastOutcome != nil {
		outcome := s.lastOutcome
		s.lastOutcome = nil
		return View{}, outcome, nil
	}

	if s.current == nil {
		if err := s.restore(now); err != nil {
			return View{}, nil, err
		}
		if s.lastOutcome != nil { // restore forced a submission
			outcome := s.lastOutcome
			s.lastOutcome = nil
			return View{}, outcome, nil
		}
	}
	return s.view(now), nil, nil
}

func (s *SessionService) restore(now time.Time) error {
	snap, ok, err := s.sessions.Load()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSession
	}

	session, err := quizsession.Restore(snap, s.bank)
	if err != nil {
		// Stale snapshot: discard silently, never surface to the user.
		s.logger.Warn("discarding stale session snapshot", "error", err)
		if err := s.sessions.Clear(); err != nil {
			return err
		}
		return ErrNoSession
	}
	s.current = session
	s.logger.Info("session restored", "session_id", session.ID)

	if d, ok := session.Duration(); ok {
		s.countdown.Start(d, session.StartTime)
		if remaining, _ := session.Remaining(now); remaining <= 0 {
			outcome, err := s.submitLocked(now, true)
			if err != nil {
				return err
			}
			s.lastOutcome = &outcome
		}
	}
	return nil
}

// Answer records the chosen label for a question of the active session.
func (s *SessionService) Answer(questionID int, label string, now time.Time) (View, error) {
	return s.mutate(now, func() error { return s.current.Answer(questionID, label) })
}

// Navigate moves the current-question pointer by delta.
func (s *SessionService) Navigate(delta int, now time.Time) (View, error) {
	return s.mutate(now, func() error { return s.current.Navigate(delta) })
}

// Flag toggles the review flag on a question.
func (s *SessionService) Flag(questionID int, now time.Time) (View, error) {
	return s.mutate(now, func() error { return s.current.Flag(questionID) })
}

func (s *SessionService) mutate(now time.Time, op func() error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		if err := s.restore(now); err != nil {
			return View{}, err
		}
		if s.current == nil {
			return View{}, ErrNoSession
		}
	}
	if err := op(); err != nil {
		return View{}, err
	}
	if err := s.persist(); err != nil {
		return View{}, err
	}
	return s.view(now), nil
}

// Submit grades the active session and feeds every answered question
// into the score store. Unanswered questions count against the result
// but are not recorded as misses.
func (s *SessionService) Submit(now time.Time) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		if err := s.restore(now); err != nil {
			return Outcome{}, err
		}
		if s.lastOutcome != nil {
			outcome := *s.lastOutcome
			s.lastOutcome = nil
			return outcome, nil
		}
	}
	return s.submitLocked(now, false)
}

func (s *SessionService) submitLocked(now time.Time, timeExpired bool) (Outcome, error) {
	session := s.current
	if err := session.Submit(); err != nil {
		return Outcome{}, err
	}
	s.countdown.Stop()

	results := grading.Grade(session.QuestionIDs, session.Answers, s.bank.CorrectLabel, session.Elapsed(now))

	for _, id := range session.QuestionIDs {
		chosen, answered := session.Answers[id]
		if !answered {
			continue
		}
		correctLabel, _ := s.bank.CorrectLabel(id)
		if _, err := s.scores.RecordAnswer(id, chosen == correctLabel); err != nil {
			return Outcome{}, err
		}
	}

	if err := s.sessions.Clear(); err != nil {
		return Outcome{}, err
	}
	s.current = nil

	s.logger.Info("session submitted",
		"session_id", session.ID,
		"correct", results.CorrectCount,
		"total", results.TotalCount,
		"passed", results.Passed,
		"time_expired", timeExpired,
	)
	return Outcome{Results: results, TimeExpired: timeExpired}, nil
}

// Abandon exits the active session with no grading side effects.
func (s *SessionService) Abandon() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		// Clearing a persisted-but-unloaded session is still an exit.
		snap, ok, err := s.sessions.Load()
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoSession
		}
		s.logger.Info("abandoning persisted session", "session_id", snap.ID)
		return s.sessions.Clear()
	}

	s.current.Abandon()
	s.countdown.Stop()
	s.logger.Info("session abandoned", "session_id", s.current.ID)
	s.current = nil
	s.lastOutcome = nil
	return s.sessions.Clear()
}

// Tick drives the countdown. When it expires, the session is submitted
// exactly as if the user had done it, and the outcome is surfaced to
// the next Current call with a time-expired notice. Ticks outside an
// active session are no-ops.
func (s *SessionService) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.State() != quizsession.StateActive {
		return
	}
	if !s.countdown.Tick(now) {
		return
	}

	s.logger.Info("session time expired", "session_id", s.current.ID)
	outcome, err := s.submitLocked(now, true)
	if err != nil {
		s.logger.Error("forced submission failed", "error", err)
		return
	}
	s.lastOutcome = &outcome
}

func (s *SessionService) persist() error {
	return s.sessions.Save(s.current.Snapshot())
}
