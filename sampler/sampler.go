// Package sampler provides the shared random source used to sample vocabularies
// and synthesize comment metadata.
package sampler

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Sampler is a seedable random source that is safe for concurrent use
type Sampler struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

// New creates a sampler; a zero seed seeds from the clock
func New(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// IntN returns a value in [0, n); n must be positive
func (s *Sampler) IntN(n int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.rng.IntN(n)
}

// IntRange returns a value in [min, max]
func (s *Sampler) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.IntN(max-min+1)
}

// Pick returns a random element of items, or "" when items is empty
func (s *Sampler) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.IntN(len(items))]
}

// Sample returns a uniformly shuffled prefix of items of length min(count, len(items)).
// The input slice is never modified.
func Sample[T any](s *Sampler, items []T, count int) []T {
	if count <= 0 || len(items) == 0 {
		return []T{}
	}

	shuffled := make([]T, len(items))
	copy(shuffled, items)

	s.mutex.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mutex.Unlock()

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// SampleOr is Sample with an emergency fallback used when items is empty
func SampleOr[T any](s *Sampler, items []T, count int, fallback []T) []T {
	if len(items) == 0 {
		return Sample(s, fallback, count)
	}
	return Sample(s, items, count)
}
