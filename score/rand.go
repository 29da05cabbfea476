package score

import (
	"math/rand"
	"sync"
)

// Rand draws uniform samples from a seedable source. It is safe for
// concurrent use so a single instance can serve all requests.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns a sample drawn uniformly from [low, high).
func (r *Rand) Uniform(low, high float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return low + r.r.Float64()*(high-low)
}

// Intn returns a sample drawn uniformly from [0, n).
func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Intn(n)
}
