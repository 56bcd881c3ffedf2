package generator

import (
	"iter"
	"slices"
	"sync"

	"github.com/kbukum/genc/errors"
)

// Create returns a generator whose every pull returns v.
func Create[T any](v T) Generator[T] {
	return constantGen[T]{value: v}
}

// Function returns a generator that calls fn on every pull. Errors from fn
// are returned unchanged.
func Function[T any](fn func() (T, error)) (Generator[T], error) {
	if fn == nil {
		return nil, errors.NilArgument("fn")
	}
	return Func[T](fn), nil
}

// Lazy returns a generator that calls fn on the first pull and returns its
// result, including its error, on that and every later pull. fn runs at
// most once even when pulls race.
func Lazy[T any](fn func() (T, error)) (Generator[T], error) {
	if fn == nil {
		return nil, errors.NilArgument("fn")
	}
	return &lazyGen[T]{fn: fn}, nil
}

// CircularSequence returns a generator replaying seq. The source is read on
// the first pull; after its last element the generator starts again from
// the first. seq must be finite. An empty source fails every pull with
// errors.ErrEmptySource.
func CircularSequence[T any](seq iter.Seq[T]) (Generator[T], error) {
	if seq == nil {
		return nil, errors.NilArgument("seq")
	}
	return &cycleGen[T]{source: seq}, nil
}

// --- Internal generators ---

type constantGen[T any] struct {
	value T
}

func (g constantGen[T]) Generate() (T, error) {
	return g.value, nil
}

type lazyGen[T any] struct {
	once sync.Once
	fn   func() (T, error)
	val  T
	err  error
}

func (g *lazyGen[T]) Generate() (T, error) {
	g.once.Do(func() {
		g.val, g.err = g.fn()
		g.fn = nil
	})
	return g.val, g.err
}

type cycleGen[T any] struct {
	source iter.Seq[T]
	items  []T
	loaded bool
	index  int
}

func (g *cycleGen[T]) Generate() (T, error) {
	if !g.loaded {
		g.items = slices.Collect(g.source)
		g.loaded = true
	}
	if len(g.items) == 0 {
		var zero T
		return zero, errors.EmptySource()
	}
	val := g.items[g.index]
	g.index++
	if g.index == len(g.items) {
		g.index = 0
	}
	return val, nil
}
