// Package validation checks configuration and recipe input.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Failures are reported as
// errors.AppError values with code INVALID_CONFIG and a "fields" detail.
//
// # Struct Tag Validation
//
//	type Recipe struct {
//	    Name string `mapstructure:"name" validate:"required"`
//	    Kind string `mapstructure:"kind" validate:"required,oneof=constant cycle"`
//	}
//	err := validation.Validate(r)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(max > min, "max", "must be greater than min")
//	err := v.Validate()
package validation
