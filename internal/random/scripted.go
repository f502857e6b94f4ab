package random

import "sync"

// Scripted replays fixed outcomes. Probabilities are ignored: Bernoulli
// returns the next scripted value whatever p is, and false once the script is
// exhausted, even for p=1. An exhausted Normal returns the requested mean.
type Scripted struct {
	mu       sync.Mutex
	injuries []bool
	normals  []float64
}

func NewScripted(injuries []bool, normals []float64) *Scripted {
	return &Scripted{injuries: injuries, normals: normals}
}

func (s *Scripted) Bernoulli(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.injuries) == 0 {
		return false
	}
	v := s.injuries[0]
	s.injuries = s.injuries[1:]
	return v
}

func (s *Scripted) Normal(mean, sd float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.normals) == 0 {
		return mean
	}
	v := s.normals[0]
	s.normals = s.normals[1:]
	return v
}

// Remaining reports how many scripted values have not been consumed yet.
func (s *Scripted) Remaining() (injuries, normals int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.injuries), len(s.normals)
}
