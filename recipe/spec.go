package recipe

import (
	"math"
	"strconv"

	"github.com/kbukum/genc/validation"
)

// Kinds.
const (
	KindConstant    = "constant"
	KindTimestamp   = "timestamp"
	KindIncrementer = "incrementer"
	KindDecrementer = "decrementer"
	KindRandom      = "random"
	KindUUID        = "uuid"
	KindCycle       = "cycle"
	KindZip         = "zip"
)

// Widths.
const (
	Width32    = "32"
	Width64    = "64"
	WidthFloat = "float"
)

const namePattern = `^[A-Za-z][A-Za-z0-9_.-]*$`

// Spec describes one generator.
type Spec struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Kind    string `yaml:"kind" mapstructure:"kind" validate:"required,oneof=constant timestamp incrementer decrementer random uuid cycle zip"`
	Width   string `yaml:"width" mapstructure:"width" validate:"omitempty,oneof=32 64 float"`
	Version int    `yaml:"version" mapstructure:"version" validate:"omitempty,oneof=4 7"`

	// Start is the first value of a counter.
	Start int64 `yaml:"start" mapstructure:"start"`
	// Min and Max bound a random draw, min inclusive and max exclusive.
	// They are kept as text so 64-bit bounds survive decoding exactly.
	Min  string `yaml:"min" mapstructure:"min"`
	Max  string `yaml:"max" mapstructure:"max"`
	Seed *int64 `yaml:"seed" mapstructure:"seed"`

	Value  any   `yaml:"value" mapstructure:"value"`
	Values []any `yaml:"values" mapstructure:"values"`

	// Format is applied with fmt.Sprintf to every value. For zip it receives
	// the first value, the second value and the 0-based counter.
	Format string `yaml:"format" mapstructure:"format"`
	First  *Spec  `yaml:"first" mapstructure:"first"`
	Second *Spec  `yaml:"second" mapstructure:"second"`
}

// width returns the effective width, defaulting to 64.
func (s *Spec) width() string {
	if s.Width == "" {
		return Width64
	}
	return s.Width
}

// Validate checks s and its nested operands.
func (s *Spec) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	return s.check().Validate()
}

func (s *Spec) check() *validation.Validator {
	v := validation.New()
	v.Pattern("name", s.Name, namePattern)

	switch s.Kind {
	case KindConstant:
		v.Custom(s.Value != nil, "value", "is required")
	case KindIncrementer, KindDecrementer:
		v.Custom(s.width() != WidthFloat, "width", "must be 32 or 64 for counters")
		if s.width() == Width32 {
			v.Custom(s.Start >= math.MinInt32 && s.Start <= math.MaxInt32, "start", "must fit in 32 bits")
		}
	case KindRandom:
		v.Required("min", s.Min).Required("max", s.Max)
		if s.Min != "" && s.Max != "" {
			v.Custom(parseBound(s.Min, s.width()) == nil, "min", "must be a "+s.width()+"-bit number")
			v.Custom(parseBound(s.Max, s.width()) == nil, "max", "must be a "+s.width()+"-bit number")
		}
	case KindCycle:
		v.Custom(len(s.Values) > 0, "values", "must not be empty")
	case KindZip:
		v.Custom(s.First != nil, "first", "is required")
		v.Custom(s.Second != nil, "second", "is required")
		if s.First != nil {
			v.Merge("first", s.First.check().Validate())
		}
		if s.Second != nil {
			v.Merge("second", s.Second.check().Validate())
		}
	}
	return v
}

func parseBound(text, width string) error {
	var err error
	switch width {
	case Width32:
		_, err = strconv.ParseInt(text, 10, 32)
	case WidthFloat:
		_, err = strconv.ParseFloat(text, 64)
	default:
		_, err = strconv.ParseInt(text, 10, 64)
	}
	return err
}
