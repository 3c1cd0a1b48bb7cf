package blobber

import (
	"time"
)

// Generator is a Middle Square Weyl Sequence pseudo-random number generator
// operating on 8-bit state.
//
// All arithmetic is performed on uint8 values and wraps modulo 256.
// A Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	seed  uint8 // Weyl increment, fixed at construction
	weyl  uint8 // Weyl accumulator
	state uint8 // Squared value, stored before the output nibble swap
}

// New creates a Generator seeded with the provided value.
// Two generators created with the same seed produce identical sequences.
//
// A seed of 0 is accepted but produces an all-zero stream.
func New(seed byte) *Generator {
	traceLog("generator seed = 0x%02x", seed)
	return &Generator{seed: seed}
}

// NewTimeSeeded creates a Generator seeded from the sub-second nanosecond
// component of the current time, truncated to 8 bits.
// The output is not reproducible across runs.
func NewTimeSeeded() *Generator {
	return New(byte(time.Now().Nanosecond()))
}

// Seed returns the value the generator was constructed with.
func (g *Generator) Seed() byte {
	return g.seed
}

// Next advances the generator and returns the next pseudo-random byte.
func (g *Generator) Next() byte {
	g.weyl += g.seed
	g.state *= g.state
	g.state += g.weyl

	// Only the output is nibble-swapped; state keeps its squared value.
	return g.state>>4 | g.state<<4
}

// Read fills p with pseudo-random bytes. It always returns len(p), nil.
func (g *Generator) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = g.Next()
	}
	return len(p), nil
}
