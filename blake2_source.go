package blobber

import (
	"github.com/FreeMasen/blobber/internal"
)

// blake2BlockSize is the Blake2b-512 output size.
const blake2BlockSize = 64

// Blake2Source is a ByteSource for fixtures that must not repeat within a
// few hundred bytes, which the 8-bit Generator cannot promise.
// It is reproducible from its seed and is not a cryptographic RNG.
type Blake2Source struct {
	block [blake2BlockSize]byte
	next  int // index of the next unread byte; blake2BlockSize means exhausted
}

// NewBlake2Source creates a Blake2Source keyed by seed. Any seed, including
// an empty one, is accepted.
func NewBlake2Source(seed []byte) *Blake2Source {
	s := &Blake2Source{block: internal.Blake2b512(seed), next: blake2BlockSize}
	traceBytes("blake2 source key", s.block[:])
	return s
}

// Next returns the next byte of the stream.
//
// The block is rehashed before it is read, so the hash of the seed itself
// never appears in the output and the first bytes come from the second hash.
func (s *Blake2Source) Next() byte {
	if s.next == blake2BlockSize {
		s.block = internal.Blake2b512(s.block[:])
		s.next = 0
	}
	b := s.block[s.next]
	s.next++
	return b
}
