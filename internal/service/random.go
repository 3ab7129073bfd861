package service

import (
	"math"
	"math/rand/v2"
	"sync"
)

// RandomSource is the subset of *rand.Rand the simulators use. Tests pass a
// seeded source for reproducible draws.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

type globalRandomSource struct{}

func (globalRandomSource) Float64() float64 { return rand.Float64() }
func (globalRandomSource) IntN(n int) int   { return rand.IntN(n) }

// NewRandomSource returns the process-wide generator, safe for concurrent use.
func NewRandomSource() RandomSource {
	return globalRandomSource{}
}

type lockedRandomSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRandomSource returns a deterministic generator.
func NewSeededRandomSource(seed uint64) RandomSource {
	return &lockedRandomSource{
		r: rand.New(rand.NewPCG(seed, seed)),
	}
}

func (s *lockedRandomSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedRandomSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// uniform draws from [lo, hi)
func uniform(src RandomSource, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// uniformInt draws from [lo, hi], both ends included
func uniformInt(src RandomSource, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
