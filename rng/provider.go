// Package rng adapts a math/rand source into the sequential uniform
// stream the reaction kernel needs for its random draws (the
// string/resonance crossover decision and the soft string subprocess
// choice).
package rng

import "math/rand"

// Stream is the kernel-facing random provider: a single-method
// contract, because the kernel only ever needs uniform floats in
// [0, 1) to pick a weighted bucket. It satisfies kinematics.Source too.
type Stream interface {
	Float64() float64
}

// stream wraps a *rand.Rand so callers can seed deterministically (for
// reproducible batch runs) without exposing math/rand directly through
// the kernel's API.
type stream struct {
	r *rand.Rand
}

// New builds a Stream seeded with seed. Two Streams built from the same
// seed draw the same sequence, making kernel calls reproducible across
// goroutines as long as each goroutine owns its own Stream: the
// provider is the caller's shared-state boundary, not the kernel's.
func New(seed int64) Stream {
	return &stream{r: rand.New(rand.NewSource(seed))}
}

func (s *stream) Float64() float64 { return s.r.Float64() }
