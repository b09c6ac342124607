package questionbank

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Bank is the immutable question bank. It is produced offline, loaded
// once at startup, and validated on load; the rest of the engine treats
// bank consistency as a precondition, never a runtime concern.
type Bank struct {
	byID  map[int]*Question
	ids   []int // ascending
	bySec map[int][]int
}

var validLabels = map[int][]string{
	2: {"a", "b"},
	3: {"a", "b", "c"},
}

// Load decodes and validates a bank from its external JSON format.
func Load(r io.Reader) (*Bank, error) {
	var questions []Question
	if err := json.NewDecoder(r).Decode(&questions); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	return New(questions)
}

// New validates a slice of questions and builds the bank indexes.
func New(questions []Question) (*Bank, error) {
	b := &Bank{
		byID:  make(map[int]*Question, len(questions)),
		bySec: make(map[int][]int),
	}

	for i := range questions {
		q := questions[i]
		if err := validate(&q); err != nil {
			return nil, fmt.Errorf("question %d: %w", q.ID, err)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("question %d: duplicate id", q.ID)
		}
		b.byID[q.ID] = &questions[i]
		b.ids = append(b.ids, q.ID)
		sec := SectionOf(q.ID)
		b.bySec[sec] = append(b.bySec[sec], q.ID)
	}

	sort.Ints(b.ids)
	for _, ids := range b.bySec {
		sort.Ints(ids)
	}
	return b, nil
}

func validate(q *Question) error {
	sec := SectionOf(q.ID)
	r, ok := sectionRanges[sec]
	if !ok || q.ID < r.Lo || q.ID > r.Hi {
		return fmt.Errorf("id outside the known section ranges")
	}
	if q.Prompt.Primary == "" {
		return fmt.Errorf("empty prompt")
	}

	labels, ok := validLabels[len(q.Options)]
	if !ok {
		return fmt.Errorf("expected 2 or 3 options, got %d", len(q.Options))
	}
	for i, opt := range q.Options {
		if opt.Label != labels[i] {
			return fmt.Errorf("option %d: expected label %q, got %q", i, labels[i], opt.Label)
		}
		if opt.Text.Primary == "" {
			return fmt.Errorf("option %q: empty text", opt.Label)
		}
	}

	if _, ok := q.Option(q.CorrectLabel); !ok {
		return fmt.Errorf("correct label %q matches no option", q.CorrectLabel)
	}
	return nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.ids)
}

// Question returns the record for the given id.
func (b *Bank) Question(id int) (*Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// CorrectLabel returns the answer-key label for the given id. It is the
// lookup the grading aggregator consumes.
func (b *Bank) CorrectLabel(id int) (string, bool) {
	q, ok := b.byID[id]
	if !ok {
		return "", false
	}
	return q.CorrectLabel, true
}

// IDs returns every question id in ascending order. The returned slice
// is a copy and safe to reorder.
func (b *Bank) IDs() []int {
	ids := make([]int, len(b.ids))
	copy(ids, b.ids)
	return ids
}

// SectionIDs returns the ids of one section in ascending order.
func (b *Bank) SectionIDs(section int) []int {
	src := b.bySec[section]
	ids := make([]int, len(src))
	copy(ids, src)
	return ids
}
