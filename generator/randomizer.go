package generator

import (
	"math/rand/v2"

	"github.com/kbukum/genc/random"
)

// Randomizer32 returns a generator of uniform values in [min, max).
// max must be greater than min.
func Randomizer32(min, max int32, seed random.Seed) (Generator[int32], error) {
	if err := random.ValidateRange(min, max); err != nil {
		return nil, err
	}
	return &int32Gen{rng: random.New(seed), min: min, max: max}, nil
}

// Randomizer64 returns a generator of uniform values in [min, max), using
// rejection sampling so that ranges which do not divide 2^64 stay unbiased.
// max must be greater than min.
func Randomizer64(min, max int64, seed random.Seed) (Generator[int64], error) {
	if err := random.ValidateRange(min, max); err != nil {
		return nil, err
	}
	return &int64Gen{rng: random.New(seed), min: min, max: max}, nil
}

// RandomizerFloat64 returns a generator of values in [min, max). Bounds must
// be ordered and their difference finite.
func RandomizerFloat64(min, max float64, seed random.Seed) (Generator[float64], error) {
	if err := random.ValidateFloatRange(min, max); err != nil {
		return nil, err
	}
	return &float64Gen{rng: random.New(seed), min: min, max: max}, nil
}

type int32Gen struct {
	rng      *rand.Rand
	min, max int32
}

func (g *int32Gen) Generate() (int32, error) {
	return random.Int32Range(g.rng, g.min, g.max), nil
}

type int64Gen struct {
	rng      *rand.Rand
	min, max int64
}

func (g *int64Gen) Generate() (int64, error) {
	return random.Int64Range(g.rng, g.min, g.max), nil
}

type float64Gen struct {
	rng      *rand.Rand
	min, max float64
}

func (g *float64Gen) Generate() (float64, error) {
	return random.Float64Range(g.rng, g.min, g.max), nil
}
