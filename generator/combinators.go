package generator

import (
	"github.com/kbukum/genc/errors"
)

// Select returns a generator that pulls once from g and returns fn of the
// value. fn is only called on pulls.
func Select[T, R any](g Generator[T], fn func(T) R) (Generator[R], error) {
	if g == nil {
		return nil, errors.NilArgument("generator")
	}
	if fn == nil {
		return nil, errors.NilArgument("selector")
	}
	return &selectGen[T, R]{source: g, fn: fn}, nil
}

// Zip returns a generator that, per pull, takes one value from first, then
// one from second, and returns fn of the pair.
func Zip[A, B, R any](first Generator[A], second Generator[B], fn func(A, B) R) (Generator[R], error) {
	if fn == nil {
		if err := checkZipArgs(first, second); err != nil {
			return nil, err
		}
		return nil, errors.NilArgument("resultSelector")
	}
	return ZipWithCounter(first, second, func(a A, b B, _ int) R { return fn(a, b) })
}

// ZipWithCounter is like Zip, but fn also receives the number of earlier
// successful pulls (0 on the first). A pull whose inner generators fail
// returns the error without calling fn or advancing the count.
func ZipWithCounter[A, B, R any](first Generator[A], second Generator[B], fn func(A, B, int) R) (Generator[R], error) {
	if err := checkZipArgs(first, second); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, errors.NilArgument("resultSelector")
	}
	return &zipGen[A, B, R]{first: first, second: second, fn: fn}, nil
}

func checkZipArgs[A, B any](first Generator[A], second Generator[B]) error {
	if first == nil {
		return errors.NilArgument("first")
	}
	if second == nil {
		return errors.NilArgument("second")
	}
	return nil
}

type selectGen[T, R any] struct {
	source Generator[T]
	fn     func(T) R
}

func (g *selectGen[T, R]) Generate() (R, error) {
	val, err := g.source.Generate()
	if err != nil {
		var zero R
		return zero, err
	}
	return g.fn(val), nil
}

type zipGen[A, B, R any] struct {
	first   Generator[A]
	second  Generator[B]
	fn      func(A, B, int) R
	counter int
}

func (g *zipGen[A, B, R]) Generate() (R, error) {
	var zero R
	a, err := g.first.Generate()
	if err != nil {
		return zero, err
	}
	b, err := g.second.Generate()
	if err != nil {
		return zero, err
	}
	n := g.counter
	g.counter++
	return g.fn(a, b, n), nil
}
