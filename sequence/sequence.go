package sequence

import (
	"context"
	"iter"

	"github.com/kbukum/genc/generator"
)

// Unlimited passed to Limit pulls until an error or cancellation.
const Unlimited = -1

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Runnable is a fully-configured consumer ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run pulls until the iterator is exhausted, fails or ctx is cancelled.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// --- Constructors ---

// Limit returns an Iterator yielding at most n values pulled from g.
// A negative n means no bound.
func Limit[T any](g generator.Generator[T], n int) Iterator[T] {
	return &limitIter[T]{source: g, remaining: n}
}

// --- Terminals ---

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](it Iterator[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			defer it.Close()
			for {
				val, ok, err := it.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, it Iterator[T], fn func(context.Context, T) error) error {
	return Drain(it, fn).Run(ctx)
}

// Collect pulls all values into a slice. On error it returns the values
// pulled so far together with the error.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	defer it.Close()
	var result []T
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Take pulls n values from g.
func Take[T any](ctx context.Context, g generator.Generator[T], n int) ([]T, error) {
	if n < 0 {
		n = 0
	}
	result := make([]T, 0, n)
	err := ForEach(ctx, Limit(g, n), func(_ context.Context, v T) error {
		result = append(result, v)
		return nil
	})
	return result, err
}

// All returns a range-over-func view of at most n values from g. A failed
// pull is yielded once with its error and ends the sequence.
func All[T any](g generator.Generator[T], n int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := 0; n < 0 || i < n; i++ {
			val, err := g.Generate()
			if !yield(val, err) || err != nil {
				return
			}
		}
	}
}

// --- Internal iterators ---

type limitIter[T any] struct {
	source    generator.Generator[T]
	remaining int
	closed    bool
}

func (it *limitIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.closed || it.remaining == 0 {
		return zero, false, nil
	}
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	val, err := it.source.Generate()
	if err != nil {
		return zero, false, err
	}
	if it.remaining > 0 {
		it.remaining--
	}
	return val, true, nil
}

func (it *limitIter[T]) Close() error {
	it.closed = true
	return nil
}
