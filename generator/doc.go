// Package generator provides lazy, pull-based value generators.
//
// A Generator produces one value each time Generate is called. Nothing runs
// until a value is pulled: factories only capture state, and combinators
// only wrap other generators.
//
// # Factories
//
//   - Create: the same value on every pull
//   - Function: calls a function on every pull
//   - Lazy: calls a function once, then repeats its result
//   - CircularSequence: replays a finite sequence forever
//   - Guid, GuidV7: a new UUID per pull
//   - Incrementer, Decrementer: bounded counters that fail instead of wrapping
//   - Randomizer32, Randomizer64, RandomizerFloat64: values in [min, max)
//
// # Combinators
//
//   - Select: transform each pulled value
//   - Zip, ZipWithCounter: pull from two generators and combine the results
//
// # Usage
//
//	ids := generator.Incrementer[int64](1)
//	names, _ := generator.CircularSequence(slices.Values([]string{"a", "b"}))
//	tags, _ := generator.Zip(names, ids, func(n string, id int64) string {
//	    return fmt.Sprintf("%s-%d", n, id)
//	})
//	tag, err := tags.Generate() // "a-1"
//
// Argument problems (nil functions or generators, empty ranges) are reported
// by the factory. Pull errors (counter overflow, errors returned by user
// functions) are reported by Generate. A generator is owned by one goroutine;
// only Lazy tolerates concurrent pulls.
package generator
