// internal/service/practice.go
package service

import (
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/ccse-trainer/backend/internal/domain/practice"
	"github.com/ccse-trainer/backend/internal/domain/questionbank"
	"github.com/ccse-trainer/backend/internal/store"
)

// PracticeService serves the "practice mistakes" flow: one weak
// question at a time, weighted toward the worst-performing ones. The
// eligible pool is recomputed on every pick because each answer can
// move a question out of it.
type PracticeService struct {
	bank   *questionbank.Bank
	scores *store.ScoreStore
	logger *slog.Logger

	mu       sync.Mutex
	selector *practice.Selector
}

func NewPracticeService(bank *questionbank.Bank, scores *store.ScoreStore, logger *slog.Logger) *PracticeService {
	return &PracticeService{
		bank:     bank,
		scores:   scores,
		logger:   logger,
		selector: practice.NewSelector(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

// Next is the practice selector's answer to "what should I review
// now". When the pool is empty the caller distinguishes "all mastered"
// from "nothing attempted yet" via NothingAttempted.
type Next struct {
	Question         *questionbank.Question `json:"question,omitempty"`
	Done             bool                   `json:"done"`
	NothingAttempted bool                   `json:"nothing_attempted,omitempty"`
	EligibleCount    int                    `json:"eligible_count"`
}

func (p *PracticeService) eligible() ([]practice.Candidate, error) {
	entries, err := p.scores.All()
	if err != nil {
		return nil, err
	}

	var candidates []practice.Candidate
	for id, entry := range entries {
		if _, ok := p.bank.Question(id); !ok {
			continue // score for a question no longer in the bank
		}
		if entry.Score < 2 {
			candidates = append(candidates, practice.Candidate{
				ID:     id,
				Weight: practice.WeightFor(entry.Score),
			})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return candidates, nil
}

// PickNext draws the next question needing work.
func (p *PracticeService) PickNext() (Next, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	candidates, err := p.eligible()
	if err != nil {
		return Next{}, err
	}

	if len(candidates) == 0 {
		empty, err := p.scores.Empty()
		if err != nil {
			return Next{}, err
		}
		return Next{Done: true, NothingAttempted: empty}, nil
	}

	id, _ := p.selector.Pick(candidates)
	q, _ := p.bank.Question(id)
	return Next{Question: q, EligibleCount: len(candidates)}, nil
}

// Answer grades one practice answer and records it. The caller asks
// for PickNext again right after, since this answer may have changed
// the eligible pool.
func (p *PracticeService) Answer(questionID int, label string) (Answered, error) {
	return answerQuestion(p.bank, p.scores, questionID, label)
}

// Reset discards the short-term exclusion buffer, as when practice
// mode is re-entered. Practice state is never persisted.
func (p *PracticeService) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selector.Reset()
}
