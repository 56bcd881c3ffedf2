package recipe

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/kbukum/genc/errors"
	"github.com/kbukum/genc/generator"
	"github.com/kbukum/genc/random"
	"github.com/kbukum/genc/validation"
)

// Named is a compiled recipe.
type Named struct {
	Name      string
	Kind      string
	Generator generator.Generator[any]
}

// Compile validates and builds every spec. Names must be present and unique.
// All problems are reported together, keyed by recipe index.
func Compile(specs []Spec) ([]Named, error) {
	v := validation.New()
	v.Custom(len(specs) > 0, "recipes", "must not be empty")

	seen := make(map[string]int, len(specs))
	out := make([]Named, 0, len(specs))
	for i, s := range specs {
		prefix := fmt.Sprintf("recipes[%d]", i)
		if s.Name == "" {
			v.AddError(prefix+".name", "is required")
		} else if j, dup := seen[s.Name]; dup {
			v.AddError(prefix+".name", fmt.Sprintf("duplicates recipes[%d]", j))
		} else {
			seen[s.Name] = i
		}

		g, err := Build(s)
		if err != nil {
			v.Merge(prefix, err)
			continue
		}
		out = append(out, Named{Name: s.Name, Kind: s.Kind, Generator: g})
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Build validates s and returns its generator.
func Build(s Spec) (generator.Generator[any], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return build(&s)
}

func build(s *Spec) (generator.Generator[any], error) {
	var (
		g   generator.Generator[any]
		err error
	)
	switch s.Kind {
	case KindConstant:
		g = generator.Create(s.Value)
	case KindTimestamp:
		g, err = generator.Lazy(func() (any, error) {
			return time.Now().UTC().Format(time.RFC3339Nano), nil
		})
	case KindIncrementer:
		g, err = counter(s, true)
	case KindDecrementer:
		g, err = counter(s, false)
	case KindRandom:
		g, err = randomizer(s)
	case KindUUID:
		if s.Version == 7 {
			g, err = box(generator.GuidV7(), nil)
		} else {
			g, err = box(generator.Guid(), nil)
		}
	case KindCycle:
		g, err = generator.CircularSequence(slices.Values(s.Values))
	case KindZip:
		return zip(s)
	default:
		return nil, errors.InvalidConfig("unknown kind " + strconv.Quote(s.Kind))
	}
	if err != nil {
		return nil, invalid(err)
	}
	if s.Format == "" {
		return g, nil
	}
	format := s.Format
	return generator.Select(g, func(v any) any { return fmt.Sprintf(format, v) })
}

func counter(s *Spec, up bool) (generator.Generator[any], error) {
	switch {
	case s.width() == Width32 && up:
		return box(generator.Incrementer(int32(s.Start)), nil)
	case s.width() == Width32:
		return box(generator.Decrementer(int32(s.Start)), nil)
	case up:
		return box(generator.Incrementer(s.Start), nil)
	default:
		return box(generator.Decrementer(s.Start), nil)
	}
}

func randomizer(s *Spec) (generator.Generator[any], error) {
	seed := random.Unseeded()
	if s.Seed != nil {
		seed = random.Seeded(*s.Seed)
	}

	switch s.width() {
	case Width32:
		lo, _ := strconv.ParseInt(s.Min, 10, 32)
		hi, _ := strconv.ParseInt(s.Max, 10, 32)
		return box(generator.Randomizer32(int32(lo), int32(hi), seed))
	case WidthFloat:
		lo, _ := strconv.ParseFloat(s.Min, 64)
		hi, _ := strconv.ParseFloat(s.Max, 64)
		return box(generator.RandomizerFloat64(lo, hi, seed))
	default:
		lo, _ := strconv.ParseInt(s.Min, 10, 64)
		hi, _ := strconv.ParseInt(s.Max, 10, 64)
		return box(generator.Randomizer64(lo, hi, seed))
	}
}

func zip(s *Spec) (generator.Generator[any], error) {
	first, err := build(s.First)
	if err != nil {
		return nil, validation.New().Merge("first", err).Validate()
	}
	second, err := build(s.Second)
	if err != nil {
		return nil, validation.New().Merge("second", err).Validate()
	}
	format := s.Format
	if format == "" {
		format = "%[1]v%[2]v"
	}
	g, err := generator.ZipWithCounter(first, second, func(a, b any, n int) any {
		return fmt.Sprintf(format, a, b, n)
	})
	if err != nil {
		return nil, invalid(err)
	}
	return g, nil
}

// box widens a typed generator to Generator[any].
func box[T any](g generator.Generator[T], err error) (generator.Generator[any], error) {
	if err != nil {
		return nil, err
	}
	return generator.Select(g, func(v T) any { return v })
}

// invalid reports a construction failure as a configuration error, keeping
// the original error as its cause. A failing range parameter becomes the
// reported field.
func invalid(err error) error {
	if errors.CodeOf(err) == errors.ErrCodeInvalidConfig {
		return err
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	field, _ := appErr.Details["param"].(string)
	if field == "" {
		field, _ = appErr.Details["argument"].(string)
	}
	return errors.InvalidConfig(appErr.Message).
		WithCause(err).
		WithDetail("fields", []validation.FieldError{{Field: field, Message: appErr.Message}})
}
