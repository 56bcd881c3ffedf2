// Package sequence bounds and consumes generators.
//
// Generators are infinite by default; this package is the consumer side
// that decides how many values to pull. Limit adapts a generator into the
// pull-based Iterator protocol with an upper bound, and the terminals
// (Collect, Take, Drain, ForEach, All) stop at the bound, at the first
// generator error, or when the context is cancelled.
//
// # Usage
//
//	ids := generator.Incrementer[int64](1)
//	first10, err := sequence.Take(ctx, ids, 10)
//
//	err = sequence.ForEach(ctx, sequence.Limit(ids, 5), func(_ context.Context, id int64) error {
//	    fmt.Println(id)
//	    return nil
//	})
//
//	for v, err := range sequence.All(dice, 3) { ... }
package sequence
