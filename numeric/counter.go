package numeric

import (
	"golang.org/x/exp/constraints"
)

// Counter is a single-register bounded counter. The register holds the
// value returned by the next call to Next. Not safe for concurrent use.
type Counter[T constraints.Signed] struct {
	next T
	dir  Direction
	err  error
}

// NewCounter creates a counter starting at start and stepping in dir.
func NewCounter[T constraints.Signed](start T, dir Direction) *Counter[T] {
	return &Counter[T]{next: start, dir: dir}
}

// NewIncrementer creates a counter that counts up from start.
func NewIncrementer[T constraints.Signed](start T) *Counter[T] {
	return NewCounter(start, Up)
}

// NewDecrementer creates a counter that counts down from start.
func NewDecrementer[T constraints.Signed](start T) *Counter[T] {
	return NewCounter(start, Down)
}

// Next returns the register and advances it. Once the register holds the
// boundary, that value is returned and every later call fails with the
// overflow error.
func (c *Counter[T]) Next() (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	v := c.next
	n, err := Step(c.dir, v)
	if err != nil {
		c.err = err
	} else {
		c.next = n
	}
	return v, nil
}

// Exhausted reports whether the counter has returned its boundary value.
func (c *Counter[T]) Exhausted() bool {
	return c.err != nil
}

// Direction returns the direction the counter steps in.
func (c *Counter[T]) Direction() Direction {
	return c.dir
}
