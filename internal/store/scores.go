// internal/store/scores.go
package store

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/ccse-trainer/backend/internal/domain/scoring"
)

// ScoreStore is the durable record of per-question performance. It is
// persisted as one JSON object under the questionScores key, mapping
// string(questionID) to a score entry, overwritten whole after every
// mutation. A corrupt document is discarded and treated as empty; that
// is the worst-case failure the user can observe.
type ScoreStore struct {
	kv     KV
	logger *slog.Logger
}

func NewScoreStore(kv KV, logger *slog.Logger) *ScoreStore {
	return &ScoreStore{kv: kv, logger: logger}
}

// Stats is the summary shown on the stats panel. NeedsPractice doubles
// as the practice-mode badge count.
type Stats struct {
	NeedsPractice int `json:"needs_practice"`
	Mastered      int `json:"mastered"`
	NotAttempted  int `json:"not_attempted"`
}

func (s *ScoreStore) load() (map[string]*scoring.Entry, error) {
	raw, ok, err := s.kv.Get(KeyQuestionScores)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]*scoring.Entry{}, nil
	}

	var entries map[string]*scoring.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("discarding corrupt question scores", "error", err)
		return map[string]*scoring.Entry{}, nil
	}
	if entries == nil {
		entries = map[string]*scoring.Entry{}
	}
	return entries, nil
}

func (s *ScoreStore) save(entries map[string]*scoring.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.kv.Set(KeyQuestionScores, string(raw))
}

// RecordAnswer creates the entry on first answer and applies the
// outcome: +1 and a streak reset when correct, the escalating penalty
// when wrong. Returns the updated entry.
func (s *ScoreStore) RecordAnswer(questionID int, correct bool) (scoring.Entry, error) {
	entries, err := s.load()
	if err != nil {
		return scoring.Entry{}, err
	}

	key := strconv.Itoa(questionID)
	entry := entries[key]
	if entry == nil {
		entry = &scoring.Entry{}
		entries[key] = entry
	}
	entry.Record(correct)

	if err := s.save(entries); err != nil {
		return scoring.Entry{}, err
	}
	return *entry, nil
}

// Entry returns the score entry for a question, or nil if it has never
// been answered.
func (s *ScoreStore) Entry(questionID int) (*scoring.Entry, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	return entries[strconv.Itoa(questionID)], nil
}

// Status derives the practice-priority band for a question.
func (s *ScoreStore) Status(questionID int) (scoring.Status, error) {
	entry, err := s.Entry(questionID)
	if err != nil {
		return "", err
	}
	return scoring.StatusOf(entry), nil
}

// All returns every stored entry keyed by question id.
func (s *ScoreStore) All() (map[int]scoring.Entry, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make(map[int]scoring.Entry, len(entries))
	for key, entry := range entries {
		id, err := strconv.Atoi(key)
		if err != nil || entry == nil {
			s.logger.Warn("skipping malformed score entry", "key", key)
			continue
		}
		out[id] = *entry
	}
	return out, nil
}

// Empty reports whether no question has ever been answered.
func (s *ScoreStore) Empty() (bool, error) {
	entries, err := s.load()
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// ResetAll clears every entry. Total and unconditional; the caller owns
// asking the user for confirmation.
func (s *ScoreStore) ResetAll() error {
	return s.kv.Delete(KeyQuestionScores)
}

// StatsFor counts the given question ids into status buckets.
func (s *ScoreStore) StatsFor(questionIDs []int) (Stats, error) {
	entries, err := s.All()
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, id := range questionIDs {
		entry, ok := entries[id]
		switch {
		case !ok:
			stats.NotAttempted++
		case entry.Score >= 2:
			stats.Mastered++
		default:
			stats.NeedsPractice++
		}
	}
	return stats, nil
}
