// Package random provides the random sources used for maze generation.
//
// Sources wrap math/rand/v2 PCG generators. A *Source is not safe for
// concurrent use; create one per generation.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/example/maze/internal/core/maze"
	"github.com/example/maze/internal/ports/secondary"
)

// Source is a deterministic random source seeded from a single uint64.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

// NewSeeded returns a Source whose sequence depends only on seed.
func NewSeeded(seed uint64) *Source {
	return &Source{
		rng:  rand.New(rand.NewPCG(seed, streamFor(seed))),
		seed: seed,
	}
}

// IntN returns a uniform integer in [0, n).
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// streamFor derives the PCG stream word from the seed with a SplitMix64 finalizer,
// so nearby seeds do not share a stream.
func streamFor(seed uint64) uint64 {
	x := seed + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// EntropySeed draws a seed from the operating system's entropy source.
func EntropySeed() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Provider implements secondary.RandomProvider with PCG sources.
type Provider struct{}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Seeded returns a fresh deterministic source for seed.
func (p *Provider) Seeded(seed uint64) maze.Random {
	return NewSeeded(seed)
}

// EntropySeed draws a nondeterministic seed.
func (p *Provider) EntropySeed() (uint64, error) {
	return EntropySeed()
}

// Ensure Provider implements the interface
var _ secondary.RandomProvider = (*Provider)(nil)
