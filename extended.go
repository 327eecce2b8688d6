package pcgx

/*
ExtendedSeed is the state of the PCG-Extended engine: a base Seed plus an
auxiliary array of N 32-bit words. The array advances only when the base
state passes through zero, which multiplies the period to 2^((N+1)*32)
without touching the array on every call.

Like Seed, ExtendedSeed is an immutable value. The extension array is owned
exclusively by the seed that holds it; operations that leave it unchanged
may share the backing array between old and new seeds.
*/
type ExtendedSeed struct {
	base Seed
	ext  []uint32
}

/*
NewExtendedSeed builds an ExtendedSeed from a base seed integer and the
initial contents of the extension array. The array length N is fixed for the
lifetime of the seed lineage; N = 0 degenerates exactly to the base engine.
The given slice is copied.
*/
func NewExtendedSeed(x uint32, extension []uint32) ExtendedSeed {
	ext := make([]uint32, len(extension))
	copy(ext, extension)
	return ExtendedSeed{base: NewSeed(x), ext: ext}
}

/*
Base returns the base engine state.
*/
func (s ExtendedSeed) Base() Seed {
	return s.base
}

/*
Extension returns a copy of the extension array.
*/
func (s ExtendedSeed) Extension() []uint32 {
	ext := make([]uint32, len(s.ext))
	copy(ext, s.ext)
	return ext
}

/*
Next advances the base engine and returns the new ExtendedSeed. The
extension array advances only when the new base state is exactly zero: a
ripple-carry increment that adds 1013904223 to element 0 and carries the add
to the next element whenever the updated element wraps to exactly zero,
stopping at the first non-zero result or the end of the array.
*/
func (s ExtendedSeed) Next() ExtendedSeed {
	base := s.base.Next()
	ext := s.ext
	if base.state == 0 {
		ext = advanceExtension(s.ext)
	}
	return ExtendedSeed{base: base, ext: ext}
}

// Ripple-carry increment of the extension counter. Always returns a fresh
// copy; the input slice belongs to a live seed.
func advanceExtension(ext []uint32) []uint32 {
	out := make([]uint32, len(ext))
	copy(out, ext)
	for i := range out {
		out[i] += defaultIncrement
		if out[i] != 0 {
			break
		}
	}
	return out
}

/*
Peel extracts a 32-bit pseudo-random output without advancing the seed: the
base engine's output xor one pseudo-randomly selected extension word. The
selection steps a throwaway bounded-int draw on the base seed and discards
the resulting state. An empty extension contributes 0, so N = 0 reproduces
the base engine's outputs exactly.
*/
func (s ExtendedSeed) Peel() uint32 {
	out := s.base.Peel()
	if len(s.ext) == 0 {
		return out
	}
	idx, _ := Step(Int(BaseConfig, 0, len(s.ext)-1), s.base)
	return out ^ s.ext[idx]
}

/*
IndependentSeed returns a generator that derives a fresh ExtendedSeed from
the current stream: three full-width draws supply the new state and, xored
together and forced odd, the new increment; the extension array is carried
over from the seed that produced the draws. Stepping it yields the derived
seed and the advanced original, so the caller's own stream continues
correctly.

The derived stream is statistically decorrelated from its parent. Whether
xoring two draws into an increment is sound in any stronger sense is
unverified; do not rely on independence against an adversary.
*/
func IndependentSeed() Generator[ExtendedSeed, ExtendedSeed] {
	// Full 32-bit words; the power-of-two-range fast path returns the raw
	// peel output.
	word := Int(ExtendedConfig, 0, 0xFFFFFFFF)
	return func(seed ExtendedSeed) (ExtendedSeed, ExtendedSeed) {
		state, seed1 := word(seed)
		b, seed2 := word(seed1)
		c, seed3 := word(seed2)
		base := Seed{uint32(state), uint32(b^c) | 1}.Next()
		return ExtendedSeed{base: base, ext: seed3.ext}, seed3
	}
}
