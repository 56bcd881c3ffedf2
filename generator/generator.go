package generator

// Generator produces values on demand.
type Generator[T any] interface {
	// Generate returns the next value. Calling it may advance internal state.
	Generate() (T, error)
}

// Func adapts a function to the Generator interface.
type Func[T any] func() (T, error)

// Generate calls f.
func (f Func[T]) Generate() (T, error) {
	return f()
}

// Must returns g and panics if err is non-nil.
//
//	ids := generator.Must(generator.Randomizer64(0, 1<<40, random.Unseeded()))
func Must[T any](g Generator[T], err error) Generator[T] {
	if err != nil {
		panic(err)
	}
	return g
}
