package model

import "math/rand/v2"

// BoolSource supplies the independent coin flips used by the random fill
type BoolSource interface {
	Bool() bool
}

// RNG is a deterministic BoolSource backed by a PCG generator
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns true or false with equal probability
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
