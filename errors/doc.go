// Package errors defines the error taxonomy shared by genc packages.
//
// Every failure is an *AppError carrying a machine-readable ErrorCode.
// Package-level sentinels (ErrOverflow, ErrOutOfRange, ...) match any
// AppError with the same code, so callers use the standard library:
//
//	if errors.Is(err, generrors.ErrOverflow) { ... }
package errors
