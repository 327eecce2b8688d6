package pcgx

import "math"

/*
MinInt and MaxInt bound the values representable by bounded integer draws.
*/
const (
	MinInt = -2147483648
	MaxInt = 2147483647
)

/*
Config binds an engine to the generic generator layer: Next advances a seed,
Peel reads a 32-bit output without advancing. Any engine satisfying the pair
plugs into every primitive and combinator identically.
*/
type Config[S any] struct {
	Next func(S) S
	Peel func(S) uint32
}

/*
MakeConfig builds a Config from an engine's transition and output functions.
*/
func MakeConfig[S any](next func(S) S, peel func(S) uint32) Config[S] {
	return Config[S]{Next: next, Peel: peel}
}

/*
BaseConfig and ExtendedConfig bind the two engines in this package.
*/
var (
	BaseConfig     = MakeConfig(Seed.Next, Seed.Peel)
	ExtendedConfig = MakeConfig(ExtendedSeed.Next, ExtendedSeed.Peel)
)

/*
Generator describes how to produce a value of type T from a seed of type S.
Stepping the same generator with the same seed always yields the same value
and the same next seed.
*/
type Generator[S, T any] func(S) (T, S)

/*
Step runs a generator against a seed, returning the value and the seed to
use for the next draw. This is the sole evaluation entry point.
*/
func Step[S, T any](gen Generator[S, T], seed S) (T, S) {
	return gen(seed)
}

/*
Int returns a generator producing integers in [low, high] inclusive, each
with equal probability. Arguments in either order; low == high always yields
that value. Bounds outside [MinInt, MaxInt] are not supported.
*/
func Int[S any](cfg Config[S], low, high int) Generator[S, int] {
	return func(seed S) (int, S) {
		lo, hi := low, high
		if hi < lo {
			lo, hi = hi, lo
		}
		span := uint64(hi-lo) + 1
		if span&(span-1) == 0 {
			// Power-of-two range, including the full 2^32 span: mask the
			// raw output, no bias to reject.
			v := int(uint64(cfg.Peel(seed)) & (span - 1))
			return lo + v, cfg.Next(seed)
		}
		r := uint32(span)
		threshold := -r % r
		for {
			x := cfg.Peel(seed)
			seed = cfg.Next(seed)
			if x >= threshold {
				return lo + int(x%r), seed
			}
		}
	}
}

/*
Float returns a generator producing floats in [low, high): two draws build a
53-bit mantissa, which is then scaled into the requested interval.
*/
func Float[S any](cfg Config[S], low, high float64) Generator[S, float64] {
	return func(seed0 S) (float64, S) {
		seed1 := cfg.Next(seed0)
		hi := float64(cfg.Peel(seed0) & 0x03FFFFFF)
		lo := float64(cfg.Peel(seed1) & 0x07FFFFFF)
		val := (hi*134217728.0 + lo) / 9007199254740992.0
		return low + val*(high-low), cfg.Next(seed1)
	}
}

/*
Bool returns a generator producing true and false with equal probability.
*/
func Bool[S any](cfg Config[S]) Generator[S, bool] {
	return Map(func(n int) bool { return n == 1 }, Int(cfg, 0, 1))
}

/*
OneIn returns a generator that produces true with probability 1/n.
*/
func OneIn[S any](cfg Config[S], n int) Generator[S, bool] {
	return Map(func(v int) bool { return v == 1 }, Int(cfg, 1, n))
}

/*
Sample returns a generator picking a uniformly random element of items. An
empty slice yields an empty Maybe rather than failing.
*/
func Sample[S, T any](cfg Config[S], items []T) Generator[S, Maybe[T]] {
	if len(items) == 0 {
		return Constant[S](Nothing[T]())
	}
	return Map(func(i int) Maybe[T] { return Just(items[i]) }, Int(cfg, 0, len(items)-1))
}

/*
Choice returns a generator picking a or b with equal probability.
*/
func Choice[S, T any](cfg Config[S], a, b T) Generator[S, T] {
	return Map(func(heads bool) T {
		if heads {
			return a
		}
		return b
	}, Bool(cfg))
}

/*
Choices returns a generator that picks one of the given generators uniformly
and runs it. Given no generators it produces T's zero value.
*/
func Choices[S, T any](cfg Config[S], gens []Generator[S, T]) Generator[S, T] {
	if len(gens) == 0 {
		var zero T
		return Constant[S](zero)
	}
	return AndThen(func(i int) Generator[S, T] { return gens[i] }, Int(cfg, 0, len(gens)-1))
}

/*
Weighted pairs a generator with its relative weight for Frequency.
*/
type Weighted[S, T any] struct {
	Weight    float64
	Generator Generator[S, T]
}

/*
Frequency returns a generator that picks one of the weighted generators with
probability proportional to its weight (negative weights count by absolute
value). Given no pairs, or only zero weights, it produces T's zero value.
*/
func Frequency[S, T any](cfg Config[S], pairs ...Weighted[S, T]) Generator[S, T] {
	total := 0.0
	for _, p := range pairs {
		total += math.Abs(p.Weight)
	}
	if total == 0 {
		var zero T
		return Constant[S](zero)
	}
	return AndThen(func(countdown float64) Generator[S, T] {
		for _, p := range pairs {
			countdown -= math.Abs(p.Weight)
			if countdown <= 0 {
				return p.Generator
			}
		}
		return pairs[len(pairs)-1].Generator
	}, Float(cfg, 0, total))
}
