package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/genc/errors"
)

// scriptedSource replays fixed raw draws.
type scriptedSource struct {
	draws []uint64
	calls int
}

func (s *scriptedSource) Uint64() uint64 {
	v := s.draws[s.calls]
	s.calls++
	return v
}

func TestSeed(t *testing.T) {
	v, ok := Seeded(-7).Value()
	assert.True(t, ok)
	assert.Equal(t, int64(-7), v)
	assert.Equal(t, "seeded(-7)", Seeded(-7).String())

	_, ok = Unseeded().Value()
	assert.False(t, ok)
	assert.Equal(t, "unseeded", Unseeded().String())
	assert.Equal(t, Unseeded(), Seed{}, "zero value is unseeded")
}

func TestNew_SeededIsDeterministic(t *testing.T) {
	a, b := New(Seeded(100)), New(Seeded(100))
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}
}

func TestNew_DifferentSeedsDiffer(t *testing.T) {
	a, b := New(Seeded(100)), New(Seeded(200))
	same := 0
	for i := 0; i < 1000; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 1000)
}

func TestNew_UnseededSourcesDiffer(t *testing.T) {
	a, b := New(Unseeded()), New(Unseeded())
	same := 0
	for i := 0; i < 1000; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 1000)
}

func TestValidateRange(t *testing.T) {
	require.NoError(t, ValidateRange(0, 1))
	require.NoError(t, ValidateRange(int64(math.MinInt64), math.MaxInt64))

	err := ValidateRange(1, 1)
	require.ErrorIs(t, err, errors.ErrOutOfRange)
	err = ValidateRange(1, 0)
	require.ErrorIs(t, err, errors.ErrOutOfRange)
	err = ValidateRange(math.NaN(), 1)
	require.ErrorIs(t, err, errors.ErrOutOfRange)
}

func TestValidateFloatRange(t *testing.T) {
	require.NoError(t, ValidateFloatRange(0.5, 0.7))
	require.ErrorIs(t, ValidateFloatRange(0.7, 0.7), errors.ErrOutOfRange)
	require.ErrorIs(t, ValidateFloatRange(0.8, 0.7), errors.ErrOutOfRange)
	require.ErrorIs(t, ValidateFloatRange(-math.MaxFloat64, math.MaxFloat64), errors.ErrOutOfRange)
	require.ErrorIs(t, ValidateFloatRange(0, math.Inf(1)), errors.ErrOutOfRange)
}

func TestInt32Range_StaysInBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int32
	}{
		{"unit", 0, 1},
		{"small", 1000, 100000},
		{"negative", -50, -10},
		{"full width", math.MinInt32, math.MaxInt32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(Seeded(1))
			for i := 0; i < 10000; i++ {
				v := Int32Range(r, tc.min, tc.max)
				require.GreaterOrEqual(t, v, tc.min)
				require.Less(t, v, tc.max)
			}
		})
	}
}

func TestRejectionThreshold(t *testing.T) {
	// 2^64 mod 3 == 1
	assert.Equal(t, uint64(math.MaxUint64-1), RejectionThreshold(3))
	// powers of two divide 2^64, nothing is rejected
	assert.Equal(t, uint64(math.MaxUint64), RejectionThreshold(1))
	assert.Equal(t, uint64(math.MaxUint64), RejectionThreshold(1<<40))
	// 2^64 mod (2^63+1) == 2^63-1
	assert.Equal(t, uint64(1<<63), RejectionThreshold(1<<63+1))

	for _, n := range []uint64{3, 7, 10, 1<<63 + 1, math.MaxUint64} {
		accepted := RejectionThreshold(n) + 1 // may wrap to 0 == 2^64
		assert.Zero(t, accepted%n, "accepted draws must cover whole multiples of %d", n)
	}
}

func TestWidth64(t *testing.T) {
	assert.Equal(t, uint64(1), Width64(0, 1))
	assert.Equal(t, uint64(math.MaxUint64), Width64(math.MinInt64, math.MaxInt64))
	assert.Equal(t, uint64(1<<63), Width64(math.MinInt64, 0))
	assert.Equal(t, uint64(10000000), Width64(math.MaxInt64-30000000, math.MaxInt64-20000000))
}

func TestInt64Range_RedrawsAboveThreshold(t *testing.T) {
	src := &scriptedSource{draws: []uint64{math.MaxUint64, 5}}
	got := Int64Range(src, 10, 13)
	assert.Equal(t, int64(12), got)
	assert.Equal(t, 2, src.calls, "the draw above the threshold must be rejected")
}

func TestInt64Range_AcceptsThreshold(t *testing.T) {
	src := &scriptedSource{draws: []uint64{math.MaxUint64 - 1}}
	got := Int64Range(src, 0, 3)
	assert.Equal(t, int64((math.MaxUint64-1)%3), got)
	assert.Equal(t, 1, src.calls)
}

func TestInt64Range_FullWidth(t *testing.T) {
	src := &scriptedSource{draws: []uint64{0, math.MaxUint64, math.MaxUint64 - 1}}
	assert.Equal(t, int64(math.MinInt64), Int64Range(src, math.MinInt64, math.MaxInt64))
	assert.Equal(t, int64(math.MaxInt64-1), Int64Range(src, math.MinInt64, math.MaxInt64))
	assert.Equal(t, 3, src.calls)
}

func TestInt64Range_StaysInBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int64
	}{
		{"unit", 0, 1},
		{"near max", math.MaxInt64 - 30000000, math.MaxInt64 - 20000000},
		{"negative", math.MinInt64, math.MinInt64 + 3},
		{"wider than int64", -1 << 62, 1<<63 - 1},
		{"full width", math.MinInt64, math.MaxInt64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(Seeded(42))
			for i := 0; i < 10000; i++ {
				v := Int64Range(r, tc.min, tc.max)
				require.GreaterOrEqual(t, v, tc.min)
				require.Less(t, v, tc.max)
			}
		})
	}
}

func TestInt64Range_Uniform(t *testing.T) {
	const buckets = 6
	const draws = 60000
	r := New(Seeded(7))
	counts := make([]int, buckets)
	for i := 0; i < draws; i++ {
		counts[Int64Range(r, 0, buckets)]++
	}
	for b, c := range counts {
		assert.InDelta(t, draws/buckets, c, draws/buckets*0.1, "bucket %d", b)
	}
}

func TestFloat64Range_StaysInBounds(t *testing.T) {
	r := New(Seeded(3))
	for i := 0; i < 10000; i++ {
		v := Float64Range(r, 0.8, 1.9)
		require.GreaterOrEqual(t, v, 0.8)
		require.Less(t, v, 1.9)
	}
}
