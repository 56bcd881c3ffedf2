package observability

import (
	"context"
	"time"

	"github.com/kbukum/genc/generator"
)

// Instrument wraps g so every pull is recorded on m under name. The values
// and errors produced by g pass through unchanged. A nil m returns g as is.
func Instrument[T any](ctx context.Context, g generator.Generator[T], m *Metrics, name string) generator.Generator[T] {
	if m == nil || g == nil {
		return g
	}
	return &instrumented[T]{ctx: ctx, inner: g, metrics: m, name: name}
}

type instrumented[T any] struct {
	ctx     context.Context
	inner   generator.Generator[T]
	metrics *Metrics
	name    string
}

func (g *instrumented[T]) Generate() (T, error) {
	start := time.Now()
	v, err := g.inner.Generate()
	g.metrics.RecordPull(g.ctx, g.name, err, time.Since(start))
	return v, err
}
