package generator

import (
	"golang.org/x/exp/constraints"

	"github.com/kbukum/genc/numeric"
)

// Incrementer returns a generator yielding start, start+1, ... The maximum
// of T is yielded once; the pull after it fails with errors.ErrOverflow.
func Incrementer[T constraints.Signed](start T) Generator[T] {
	return counterGen[T]{counter: numeric.NewIncrementer(start)}
}

// Decrementer returns a generator yielding start, start-1, ... The minimum
// of T is yielded once; the pull after it fails with errors.ErrOverflow.
func Decrementer[T constraints.Signed](start T) Generator[T] {
	return counterGen[T]{counter: numeric.NewDecrementer(start)}
}

type counterGen[T constraints.Signed] struct {
	counter *numeric.Counter[T]
}

func (g counterGen[T]) Generate() (T, error) {
	return g.counter.Next()
}
