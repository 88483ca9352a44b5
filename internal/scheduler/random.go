package scheduler

import (
	"math"
	"math/rand"
)

// Source supplies the uniform draws used by the generator. *rand.Rand
// satisfies it; tests can supply a deterministic sequence.
type Source interface {
	Intn(n int) int
}

// DefaultSource draws from the shared math/rand source, which is safe
// for concurrent use by request handlers.
var DefaultSource Source = globalSource{}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// SinSource is a seeded pseudo-random source built on scaled sine
// values. It produces the same sequence for the same seed, which keeps
// seeded demo data reproducible across runs.
type SinSource struct {
	seed float64
}

func NewSinSource(seed int64) *SinSource {
	return &SinSource{seed: float64(seed)}
}

func (s *SinSource) Intn(n int) int {
	s.seed++
	x := math.Sin(s.seed) * 10000
	frac := x - math.Floor(x)
	return int(frac * float64(n))
}
