package random

import (
	"math/rand"
)

// Source is the capability the simulation needs from a random number generator.
// Implementations are not required to be safe for concurrent use; callers that
// sample concurrently give each goroutine its own Source (see Fork).
type Source interface {
	// Bernoulli reports true with probability p.
	Bernoulli(p float64) bool
	// Normal draws from a normal distribution with the given mean and standard deviation.
	Normal(mean, sd float64) float64
}

// Rand adapts a *rand.Rand to Source.
type Rand struct {
	rng *rand.Rand
}

func NewSeeded(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Bernoulli(p float64) bool {
	return r.rng.Float64() < p
}

func (r *Rand) Normal(mean, sd float64) float64 {
	if sd == 0 {
		return mean
	}
	return r.rng.NormFloat64()*sd + mean
}

// Fork derives n independent child sources from r. The child seeds are drawn
// from r in order, so the same parent state always yields the same children.
func (r *Rand) Fork(n int) []Source {
	out := make([]Source, n)
	for i := range out {
		out[i] = NewSeeded(r.rng.Int63())
	}
	return out
}

// Forker is implemented by sources that can hand out isolated child sources.
type Forker interface {
	Fork(n int) []Source
}
