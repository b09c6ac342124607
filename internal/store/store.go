// internal/store/store.go
package store

// Keys of the persisted engine state. Each key holds one JSON document
// that is overwritten whole on every mutation.
const (
	KeyQuestionScores = "questionScores"
	KeyQuizSession    = "quizSession"
)

// KV is the storage capability the engine is written against. The
// production implementation is SQLite; tests use the in-memory fake.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
