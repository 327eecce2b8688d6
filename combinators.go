package pcgx

/*
Maybe holds an optional value: Ok reports whether Value is present.
*/
type Maybe[T any] struct {
	Value T
	Ok    bool
}

/*
Just wraps a present value.
*/
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{Value: v, Ok: true}
}

/*
Nothing is the absent Maybe.
*/
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

/*
PairOf holds the result of the Pair generator.
*/
type PairOf[A, B any] struct {
	First  A
	Second B
}

/*
Constant returns a generator that always produces value and leaves the seed
unchanged.
*/
func Constant[S, T any](value T) Generator[S, T] {
	return func(seed S) (T, S) {
		return value, seed
	}
}

/*
Map transforms the values a generator produces.
*/
func Map[S, A, B any](f func(A) B, gen Generator[S, A]) Generator[S, B] {
	return func(seed S) (B, S) {
		a, seed1 := gen(seed)
		return f(a), seed1
	}
}

/*
Map2 combines two generators, threading the seed through each in order.
*/
func Map2[S, A, B, C any](f func(A, B) C, genA Generator[S, A], genB Generator[S, B]) Generator[S, C] {
	return func(seed S) (C, S) {
		a, seed1 := genA(seed)
		b, seed2 := genB(seed1)
		return f(a, b), seed2
	}
}

/*
Map3 combines three generators.
*/
func Map3[S, A, B, C, D any](f func(A, B, C) D, genA Generator[S, A], genB Generator[S, B], genC Generator[S, C]) Generator[S, D] {
	return func(seed S) (D, S) {
		a, seed1 := genA(seed)
		b, seed2 := genB(seed1)
		c, seed3 := genC(seed2)
		return f(a, b, c), seed3
	}
}

/*
Map4 combines four generators.
*/
func Map4[S, A, B, C, D, E any](f func(A, B, C, D) E, genA Generator[S, A], genB Generator[S, B], genC Generator[S, C], genD Generator[S, D]) Generator[S, E] {
	return func(seed S) (E, S) {
		a, seed1 := genA(seed)
		b, seed2 := genB(seed1)
		c, seed3 := genC(seed2)
		d, seed4 := genD(seed3)
		return f(a, b, c, d), seed4
	}
}

/*
Map5 combines five generators.
*/
func Map5[S, A, B, C, D, E, F any](f func(A, B, C, D, E) F, genA Generator[S, A], genB Generator[S, B], genC Generator[S, C], genD Generator[S, D], genE Generator[S, E]) Generator[S, F] {
	return func(seed S) (F, S) {
		a, seed1 := genA(seed)
		b, seed2 := genB(seed1)
		c, seed3 := genC(seed2)
		d, seed4 := genD(seed3)
		e, seed5 := genE(seed4)
		return f(a, b, c, d, e), seed5
	}
}

/*
AndMap applies a generated function to a generated argument, running the
function generator first. Chains of AndMap extend Map beyond five arguments.
*/
func AndMap[S, A, B any](fgen Generator[S, func(A) B], gen Generator[S, A]) Generator[S, B] {
	return Map2(func(f func(A) B, a A) B { return f(a) }, fgen, gen)
}

/*
AndThen sequences a generator with a function choosing the next generator
from its value.
*/
func AndThen[S, A, B any](f func(A) Generator[S, B], gen Generator[S, A]) Generator[S, B] {
	return func(seed S) (B, S) {
		a, seed1 := gen(seed)
		return f(a)(seed1)
	}
}

/*
Filter retries a generator until its value satisfies pred. If pred can never
be satisfied the generator never terminates; the caller owns that contract.
*/
func Filter[S, T any](pred func(T) bool, gen Generator[S, T]) Generator[S, T] {
	return func(seed S) (T, S) {
		for {
			v, next := gen(seed)
			if pred(v) {
				return v, next
			}
			seed = next
		}
	}
}

/*
Pair runs two generators in order and pairs their results.
*/
func Pair[S, A, B any](first Generator[S, A], second Generator[S, B]) Generator[S, PairOf[A, B]] {
	return Map2(func(a A, b B) PairOf[A, B] {
		return PairOf[A, B]{First: a, Second: b}
	}, first, second)
}

/*
List runs a generator n times and collects the results. n <= 0 yields an
empty slice without consuming randomness.
*/
func List[S, T any](n int, gen Generator[S, T]) Generator[S, []T] {
	return func(seed S) ([]T, S) {
		if n <= 0 {
			return []T{}, seed
		}
		out := make([]T, n)
		for i := range out {
			out[i], seed = gen(seed)
		}
		return out, seed
	}
}

/*
MaybeOf produces a value from gen when coin lands true, and Nothing
otherwise.
*/
func MaybeOf[S, T any](coin Generator[S, bool], gen Generator[S, T]) Generator[S, Maybe[T]] {
	return AndThen(func(heads bool) Generator[S, Maybe[T]] {
		if heads {
			return Map(Just[T], gen)
		}
		return Constant[S](Nothing[T]())
	}, coin)
}
