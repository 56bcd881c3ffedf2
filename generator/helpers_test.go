package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pull takes n values from g and fails the test on any error.
func pull[T any](t *testing.T, g Generator[T], n int) []T {
	t.Helper()
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := g.Generate()
		require.NoError(t, err, "pull %d", i)
		out = append(out, v)
	}
	return out
}

// recorder appends its name to a shared log on every pull.
type recorder[T any] struct {
	name  string
	log   *[]string
	inner Generator[T]
}

func (r *recorder[T]) Generate() (T, error) {
	*r.log = append(*r.log, r.name)
	return r.inner.Generate()
}
