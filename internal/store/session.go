// internal/store/session.go
package store

import (
	"encoding/json"
	"log/slog"

	"github.com/ccse-trainer/backend/internal/domain/quizsession"
)

// SessionStore persists the active session snapshot under the
// quizSession key so a crash or reload can offer to resume. There is at
// most one active session; terminal states clear the record.
type SessionStore struct {
	kv     KV
	logger *slog.Logger
}

func NewSessionStore(kv KV, logger *slog.Logger) *SessionStore {
	return &SessionStore{kv: kv, logger: logger}
}

// Save overwrites the persisted snapshot.
func (s *SessionStore) Save(snap quizsession.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.kv.Set(KeyQuizSession, string(raw))
}

// Load returns the persisted snapshot, if one exists. A corrupt record
// is discarded and reported as absent.
func (s *SessionStore) Load() (quizsession.Snapshot, bool, error) {
	raw, ok, err := s.kv.Get(KeyQuizSession)
	if err != nil || !ok {
		return quizsession.Snapshot{}, false, err
	}

	var snap quizsession.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.logger.Warn("discarding corrupt session snapshot", "error", err)
		if err := s.kv.Delete(KeyQuizSession); err != nil {
			return quizsession.Snapshot{}, false, err
		}
		return quizsession.Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Clear removes the persisted snapshot.
func (s *SessionStore) Clear() error {
	return s.kv.Delete(KeyQuizSession)
}
