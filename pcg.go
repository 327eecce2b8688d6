/*
Package pcgx implements a deterministic pseudo-random value generator based
on the PCG family (https://www.pcg-random.org), extended with an auxiliary
state array for a much longer period than the 32-bit base generator alone.

Every seed type is an immutable value: advancing a stream returns a new seed
and leaves the old one intact, so independent copies of the same seed may be
advanced in parallel without coordination. Advancing the *same* seed value
from two places yields two identical streams; branch a stream with
IndependentSeed instead.

PCG is not cryptographically secure. Outputs are statistically good but
fully predictable given the state.
*/
package pcgx

import (
	"github.com/dgryski/go-farm"
)

const (
	multiplier       = 1664525
	defaultIncrement = 1013904223
	mixMultiplier    = 277803737
)

/*
Seed is the complete state of the base PCG engine: a 32-bit state word plus
the stream-selecting increment. The zero value is not a valid seed; use
NewSeed or SeedFrom.
*/
type Seed struct {
	state     uint32
	increment uint32
}

/*
NewSeed derives a Seed from x. The same x always yields the same stream;
different x values yield, with overwhelming probability, different streams.
*/
func NewSeed(x uint32) Seed {
	s := Seed{0, defaultIncrement}.Next()
	s.state += x
	return s.Next()
}

/*
SeedFrom derives a Seed from arbitrary byte material (a name, a UUID, file
contents) by folding its farm hash into the 32-bit seed space.
*/
func SeedFrom(data []byte) Seed {
	h := farm.Hash64(data)
	return NewSeed(uint32(h) ^ uint32(h>>32))
}

/*
Next advances the linear congruential step and returns the new Seed. The
receiver is unchanged. The increment is fixed for the lifetime of a stream.
*/
func (s Seed) Next() Seed {
	return Seed{s.state*multiplier + s.increment, s.increment}
}

/*
Peel extracts a 32-bit pseudo-random output from the current state without
advancing it, using the RXS-M-SH permutation. Calling Peel twice on the same
Seed returns the same value; interleave with Next to produce a stream.

The permutation is fixed. Changing it would break every serialized seed.
*/
func (s Seed) Peel() uint32 {
	word := (s.state ^ s.state>>(s.state>>28+4)) * mixMultiplier
	return word ^ word>>22
}
