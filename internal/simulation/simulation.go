// simulation/simulation.go
package simulation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
	"github.com/ccse-trainer/backend/internal/domain/quizsession"
	"github.com/ccse-trainer/backend/internal/service"
	"github.com/ccse-trainer/backend/internal/store"
	"github.com/ccse-trainer/backend/internal/worker"
)

const answerWorkers = 4

// Run drives the whole engine once against an in-memory store: a timed
// session answered concurrently, then a practice walk over whatever the
// session left below mastery. Useful as a smoke check after changes to
// the scoring or session plumbing, without touching a real database.
func Run(bank *questionbank.Bank, logger *slog.Logger) error {
	kv := store.NewMemory()
	scores := store.NewScoreStore(kv, logger)
	sessionStore := store.NewSessionStore(kv, logger)
	sessions := service.NewSessionService(bank, sessionStore, scores, logger)
	practice := service.NewPracticeService(bank, scores, logger)

	outcome, err := runSession(bank, sessions)
	if err != nil {
		return fmt.Errorf("session run: %w", err)
	}
	fmt.Printf("Session graded: %d/%d (%.1f%%), passed=%v\n",
		outcome.Results.CorrectCount, outcome.Results.TotalCount,
		outcome.Results.Percentage, outcome.Results.Passed)
	for section, sec := range outcome.Results.BySection {
		fmt.Printf("  section %d: %d/%d\n", section, sec.Correct, sec.Total)
	}

	if err := runPractice(practice); err != nil {
		return fmt.Errorf("practice run: %w", err)
	}
	return nil
}

// runSession starts a proportionally timed session over the full bank
// and answers every question concurrently, alternating a wrong pick in
// to leave material for the practice walk. Answers race each other on
// purpose; the engine serializes them.
func runSession(bank *questionbank.Bank, sessions *service.SessionService) (service.Outcome, error) {
	now := time.Now()
	view, err := sessions.Start(quizsession.Config{
		Scope:   quizsession.ScopeAll,
		Shuffle: true,
		Timer:   quizsession.TimerProportional,
	}, now)
	if err != nil {
		return service.Outcome{}, err
	}
	fmt.Printf("Session started: %s (%d questions", view.ID, len(view.QuestionIDs))
	if view.RemainingSec != nil {
		fmt.Printf(", %ds on the clock", *view.RemainingSec)
	}
	fmt.Println(")")

	pool := worker.NewPool[error](answerWorkers, len(view.QuestionIDs))
	for i, id := range view.QuestionIDs {
		questionID := id
		wrong := i%3 == 0
		pool.Submit(questionID, func() error {
			label, _ := bank.CorrectLabel(questionID)
			if wrong {
				q, _ := bank.Question(questionID)
				for _, opt := range q.Options {
					if opt.Label != label {
						label = opt.Label
						break
					}
				}
			}
			_, err := sessions.Answer(questionID, label, time.Now())
			return err
		})
	}
	pool.Close()
	for result := range pool.Results() {
		if result.Output != nil {
			return service.Outcome{}, fmt.Errorf("answering %d: %w", result.JobID, result.Output)
		}
	}

	return sessions.Submit(time.Now())
}

// runPractice answers weak questions correctly until the selector
// reports the pool drained.
func runPractice(practice *service.PracticeService) error {
	rounds := 0
	for {
		next, err := practice.PickNext()
		if err != nil {
			return err
		}
		if next.Done {
			fmt.Printf("Practice drained after %d answers\n", rounds)
			return nil
		}

		answered, err := practice.Answer(next.Question.ID, next.Question.CorrectLabel)
		if err != nil {
			return err
		}
		rounds++
		if rounds%25 == 0 {
			fmt.Printf("  practiced %d (last: q%d score %d, %d eligible)\n",
				rounds, answered.QuestionID, answered.Score.Score, next.EligibleCount)
		}
	}
}
