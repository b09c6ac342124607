package practice_test

import (
	"math/rand"
	"testing"

	"github.com/ccse-trainer/backend/internal/domain/practice"
)

func newSelector() *practice.Selector {
	return practice.NewSelector(rand.New(rand.NewSource(42)))
}

func TestWeightFor(t *testing.T) {
	cases := []struct {
		score, want int
	}{
		{-9, 9},
		{-1, 1},
		{0, 1},
		{1, 1},
	}
	for _, c := range cases {
		if got := practice.WeightFor(c.score); got != c.want {
			t.Errorf("WeightFor(%d) = %d, want %d", c.score, got, c.want)
		}
	}
}

func TestPick_EmptyPool(t *testing.T) {
	if _, ok := newSelector().Pick(nil); ok {
		t.Error("expected no pick from an empty pool")
	}
}

func TestPick_NoImmediateRepeats(t *testing.T) {
	s := newSelector()
	candidates := make([]practice.Candidate, 0, 6)
	for id := 1001; id <= 1006; id++ {
		candidates = append(candidates, practice.Candidate{ID: id, Weight: 1})
	}

	var picks []int
	for i := 0; i < 10; i++ {
		id, ok := s.Pick(candidates)
		if !ok {
			t.Fatal("expected a pick")
		}
		picks = append(picks, id)
	}

	// With a pool of 6 and a recent buffer of 5, no id may repeat
	// within any window of 5 consecutive picks.
	for i := range picks {
		for j := i + 1; j < len(picks) && j < i+5; j++ {
			if picks[i] == picks[j] {
				t.Fatalf("id %d repeated at positions %d and %d: %v", picks[i], i, j, picks)
			}
		}
	}
}

func TestPick_FallsBackWhenAllRecent(t *testing.T) {
	s := newSelector()
	candidates := []practice.Candidate{{ID: 1001, Weight: 3}, {ID: 1002, Weight: 1}}

	// Both candidates enter the recent buffer almost immediately, but
	// picking must keep working via the full-pool fallback.
	for i := 0; i < 20; i++ {
		if _, ok := s.Pick(candidates); !ok {
			t.Fatal("expected fallback pick")
		}
	}
}

func TestPick_FavorsHigherDeficit(t *testing.T) {
	s := practice.NewSelector(rand.New(rand.NewSource(7)))
	candidates := []practice.Candidate{
		{ID: 1001, Weight: 9}, // struggling hard
		{ID: 1002, Weight: 1},
	}

	counts := map[int]int{}
	for i := 0; i < 1000; i++ {
		s.Reset()
		id, _ := s.Pick(candidates)
		counts[id]++
	}

	// 9:1 weights: the struggling question should dominate clearly.
	if counts[1001] <= counts[1002]*3 {
		t.Errorf("expected heavy bias toward the struggling question, got %v", counts)
	}
}

func TestReset_ClearsRecentBuffer(t *testing.T) {
	s := newSelector()
	candidates := []practice.Candidate{{ID: 1001, Weight: 1}, {ID: 1002, Weight: 1}}

	first, _ := s.Pick(candidates)
	s.Reset()

	// After a reset the just-picked question is immediately drawable
	// again; only one candidate remains un-recent otherwise.
	seen := false
	for i := 0; i < 20; i++ {
		s.Reset()
		if id, _ := s.Pick(candidates); id == first {
			seen = true
			break
		}
	}
	if !seen {
		t.Errorf("expected %d to be drawable again after Reset", first)
	}
}
