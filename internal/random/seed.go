// Package random builds the PRNGs used for imposter selection and word picks.
//
// Seeds come from crypto/rand unless a fixed seed is configured, which makes
// a whole session replayable.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a PCG generator for the seed
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Source hands out generators. With a fixed seed every generator is derived
// from it in order; otherwise each gets a fresh crypto seed.
type Source struct {
	fixed  bool
	parent *rand.Rand
}

// NewSource returns a Source. A zero seed means "seed from crypto/rand".
func NewSource(seed uint64) *Source {
	if seed == 0 {
		return &Source{}
	}
	return &Source{fixed: true, parent: New(seed)}
}

// Next returns a new independent generator. Not safe for concurrent use.
func (s *Source) Next() (*rand.Rand, error) {
	if s.fixed {
		return New(s.parent.Uint64()), nil
	}
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}
