package practice

import "math/rand"

// recentBufferSize bounds the FIFO of recently shown questions used to
// bias selection away from immediate repeats.
const recentBufferSize = 5

// Candidate is one eligible question with its selection weight.
type Candidate struct {
	ID     int
	Weight int
}

// WeightFor maps a question's raw score to its selection weight: the
// deeper the deficit, the likelier the draw. Never zero, so learning
// questions (score 0 or 1) cannot starve.
func WeightFor(score int) int {
	w := score
	if w < 0 {
		w = -w
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Selector draws practice questions by weighted random sampling,
// excluding the most recently shown ones. Selector state is ephemeral:
// it lives for one practice run and is never persisted.
type Selector struct {
	rng    *rand.Rand
	recent []int
}

func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Reset clears the recent buffer, e.g. when practice mode restarts.
func (s *Selector) Reset() {
	s.recent = s.recent[:0]
}

// Pick draws the next question from the candidates. Questions in the
// recent buffer are excluded unless that would empty the pool, in which
// case the full candidate set is used. Returns false when there are no
// candidates at all.
func (s *Selector) Pick(candidates []Candidate) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	pool := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !s.isRecent(c.ID) {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		pool = candidates
	}

	id := s.draw(pool)
	s.push(id)
	return id, true
}

func (s *Selector) draw(pool []Candidate) int {
	total := 0
	for _, c := range pool {
		total += c.Weight
	}

	r := s.rng.Intn(total)
	for _, c := range pool {
		r -= c.Weight
		if r < 0 {
			return c.ID
		}
	}
	return pool[len(pool)-1].ID
}

func (s *Selector) isRecent(id int) bool {
	for _, r := range s.recent {
		if r == id {
			return true
		}
	}
	return false
}

func (s *Selector) push(id int) {
	s.recent = append(s.recent, id)
	if len(s.recent) > recentBufferSize {
		s.recent = s.recent[1:]
	}
}
