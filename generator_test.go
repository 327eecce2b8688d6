package pcgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBounds(t *testing.T) {
	cases := []struct{ low, high int }{
		{0, 0},
		{5, 5},
		{0, 1},
		{-3, 7},
		{1, 6},
		{0, 100},
		{-1000, 1000},
		{MaxInt - 1, MaxInt},
		{MinInt, MinInt + 10},
		{MinInt, MaxInt},
	}
	for _, tc := range cases {
		gen := Int(BaseConfig, tc.low, tc.high)
		seed := NewSeed(42)
		for i := 0; i < 200; i++ {
			var v int
			v, seed = Step(gen, seed)
			require.GreaterOrEqualf(t, v, tc.low, "draw %d of [%d, %d]", i, tc.low, tc.high)
			require.LessOrEqualf(t, v, tc.high, "draw %d of [%d, %d]", i, tc.low, tc.high)
		}
	}
}

func TestIntReversedBounds(t *testing.T) {
	gen := Int(BaseConfig, 10, -10)
	seed := NewSeed(1)
	for i := 0; i < 50; i++ {
		var v int
		v, seed = Step(gen, seed)
		require.GreaterOrEqual(t, v, -10)
		require.LessOrEqual(t, v, 10)
	}
}

func TestIntDegenerateRange(t *testing.T) {
	seed := NewSeed(42)
	v, next := Step(Int(BaseConfig, 7, 7), seed)
	assert.Equal(t, 7, v)
	assert.Equal(t, seed.Next(), next)
}

func TestIntSeedReachableByNext(t *testing.T) {
	// Power-of-two ranges advance exactly once.
	seed := NewSeed(3)
	_, next := Step(Int(BaseConfig, 0, 15), seed)
	assert.Equal(t, seed.Next(), next)
}

func TestIntDeterminism(t *testing.T) {
	gen := Int(BaseConfig, -50, 50)
	for _, x := range []uint32{0, 1, 42} {
		v1, s1 := Step(gen, NewSeed(x))
		v2, s2 := Step(gen, NewSeed(x))
		assert.Equal(t, v1, v2)
		assert.Equal(t, s1, s2)
	}
}

func TestIntOverExtendedEngine(t *testing.T) {
	gen := Int(ExtendedConfig, 1, 6)
	seed := NewExtendedSeed(42, []uint32{1, 2, 3})
	for i := 0; i < 100; i++ {
		var v int
		v, seed = Step(gen, seed)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
	}
}

func TestFloatBounds(t *testing.T) {
	cases := []struct{ low, high float64 }{
		{0, 1},
		{-2.5, 2.5},
		{100, 200},
	}
	for _, tc := range cases {
		gen := Float(BaseConfig, tc.low, tc.high)
		seed := NewSeed(11)
		for i := 0; i < 100; i++ {
			var v float64
			v, seed = Step(gen, seed)
			require.GreaterOrEqual(t, v, tc.low)
			require.Less(t, v, tc.high)
		}
	}
}

func TestFloatDegenerateRange(t *testing.T) {
	v, _ := Step(Float(BaseConfig, 3.25, 3.25), NewSeed(11))
	assert.Equal(t, 3.25, v)
}

func TestBoolProducesBothValues(t *testing.T) {
	seed := NewSeed(1)
	gen := Bool(BaseConfig)
	seen := map[bool]bool{}
	for i := 0; i < 40; i++ {
		var v bool
		v, seed = Step(gen, seed)
		seen[v] = true
	}
	assert.True(t, seen[true])
	assert.True(t, seen[false])
}

func TestOneIn(t *testing.T) {
	always, _ := Step(OneIn(BaseConfig, 1), NewSeed(5))
	assert.True(t, always)

	seed := NewSeed(3)
	gen := OneIn(BaseConfig, 50)
	trues := 0
	for i := 0; i < 60; i++ {
		var v bool
		v, seed = Step(gen, seed)
		if v {
			trues++
		}
	}
	assert.Less(t, trues, 10)
}

func TestSample(t *testing.T) {
	empty, _ := Step(Sample(BaseConfig, []string{}), NewSeed(9))
	assert.False(t, empty.Ok)

	only, _ := Step(Sample(BaseConfig, []string{"solo"}), NewSeed(9))
	require.True(t, only.Ok)
	assert.Equal(t, "solo", only.Value)

	items := []int{10, 20, 30, 40, 50}
	seed := NewSeed(9)
	gen := Sample(BaseConfig, items)
	hit := map[int]bool{}
	for i := 0; i < 60; i++ {
		var m Maybe[int]
		m, seed = Step(gen, seed)
		require.True(t, m.Ok)
		assert.Contains(t, items, m.Value)
		hit[m.Value] = true
	}
	assert.Len(t, hit, len(items))
}

func TestChoice(t *testing.T) {
	seed := NewSeed(1)
	gen := Choice(BaseConfig, "heads", "tails")
	seen := map[string]bool{}
	for i := 0; i < 40; i++ {
		var v string
		v, seed = Step(gen, seed)
		require.Contains(t, []string{"heads", "tails"}, v)
		seen[v] = true
	}
	assert.Len(t, seen, 2)
}

func TestChoices(t *testing.T) {
	gens := []Generator[Seed, int]{
		Constant[Seed](1),
		Constant[Seed](2),
		Constant[Seed](3),
	}
	seed := NewSeed(9)
	gen := Choices(BaseConfig, gens)
	seen := map[int]bool{}
	for i := 0; i < 60; i++ {
		var v int
		v, seed = Step(gen, seed)
		require.Contains(t, []int{1, 2, 3}, v)
		seen[v] = true
	}
	assert.Len(t, seen, 3)

	zero, _ := Step(Choices[Seed, int](BaseConfig, nil), NewSeed(9))
	assert.Equal(t, 0, zero)
}

func TestFrequency(t *testing.T) {
	onlyFirst := Frequency(BaseConfig,
		Weighted[Seed, string]{Weight: 1, Generator: Constant[Seed]("a")},
		Weighted[Seed, string]{Weight: 0, Generator: Constant[Seed]("b")},
	)
	seed := NewSeed(4)
	for i := 0; i < 30; i++ {
		var v string
		v, seed = Step(onlyFirst, seed)
		require.Equal(t, "a", v)
	}

	skewed := Frequency(BaseConfig,
		Weighted[Seed, string]{Weight: 99, Generator: Constant[Seed]("common")},
		Weighted[Seed, string]{Weight: 1, Generator: Constant[Seed]("rare")},
	)
	seed = NewSeed(4)
	common := 0
	for i := 0; i < 100; i++ {
		var v string
		v, seed = Step(skewed, seed)
		if v == "common" {
			common++
		}
	}
	assert.Greater(t, common, 80)

	zero, _ := Step(Frequency[Seed, int](BaseConfig), NewSeed(4))
	assert.Equal(t, 0, zero)
}
