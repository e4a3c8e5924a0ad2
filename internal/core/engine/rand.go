package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source behind every non-deterministic choice in the
// enrichment pass. Tests inject a seeded source for repeatability.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded, non-concurrency-safe source for tests.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// lockedRand guards a rand.Rand for concurrent requests.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand returns a time-seeded source safe for concurrent use.
func NewLockedRand() Rand {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// pick returns a uniformly chosen element.
func pick(rng Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// sample returns k distinct elements chosen without replacement. k is
// clamped to len(options).
func sample(rng Rand, options []string, k int) []string {
	if k > len(options) {
		k = len(options)
	}
	pool := make([]string, len(options))
	copy(pool, options)
	for i := len(pool) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
