package sampler

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyCandidates is returned when Next is called with no candidates.
var ErrEmptyCandidates = errors.New("sampler: empty candidate list")

// CycleSampler hands out items from a shuffled copy of the candidate
// list, each item exactly once per pass. When the pass is exhausted the
// next call reshuffles whatever candidates it receives.
type CycleSampler struct {
	working []string
	cursor  int
	cycles  int64
	rng     *rand.Rand
}

func New() *CycleSampler {
	return NewWithSeed(time.Now().UnixNano())
}

func NewWithSeed(seed int64) *CycleSampler {
	return &CycleSampler{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns one item, never repeating within a pass. Rebuild is
// triggered by cursor exhaustion only: if the candidate list changes
// mid-pass, the stale working copy keeps serving until it runs out.
func (s *CycleSampler) Next(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidates
	}

	if s.cursor >= len(s.working) {
		s.rebuild(candidates)
	}

	item := s.working[s.cursor]
	s.cursor++
	return item, nil
}

// Remaining reports how many items are left in the current pass.
func (s *CycleSampler) Remaining() int {
	return len(s.working) - s.cursor
}

// Cycle reports how many passes have been started.
func (s *CycleSampler) Cycle() int64 {
	return s.cycles
}

// rebuild copies the candidates and applies a Fisher-Yates shuffle.
func (s *CycleSampler) rebuild(candidates []string) {
	s.working = make([]string, len(candidates))
	copy(s.working, candidates)

	for i := len(s.working) - 1; i >= 1; i-- {
		j := s.rng.Intn(i + 1)
		s.working[i], s.working[j] = s.working[j], s.working[i]
	}

	s.cursor = 0
	s.cycles++
}
