// Package numeric implements bounded counting over signed integers.
//
// The functions here are pure: they operate on explicit state and never
// wrap around. A counter returns its boundary value (MaxOf for counting up,
// MinOf for counting down) exactly once, and the step after it fails with
// errors.ErrOverflow.
//
//	c := numeric.NewIncrementer[int32](math.MaxInt32)
//	v, _ := c.Next()   // 2147483647
//	_, err := c.Next() // OVERFLOW
package numeric
