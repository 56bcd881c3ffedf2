package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/genc/errors"
)

func TestBounds(t *testing.T) {
	assert.Equal(t, 8, Bits[int8]())
	assert.Equal(t, 32, Bits[int32]())
	assert.Equal(t, 64, Bits[int64]())

	assert.Equal(t, int8(math.MinInt8), MinOf[int8]())
	assert.Equal(t, int8(math.MaxInt8), MaxOf[int8]())
	assert.Equal(t, int16(math.MinInt16), MinOf[int16]())
	assert.Equal(t, int16(math.MaxInt16), MaxOf[int16]())
	assert.Equal(t, int32(math.MinInt32), MinOf[int32]())
	assert.Equal(t, int32(math.MaxInt32), MaxOf[int32]())
	assert.Equal(t, int64(math.MinInt64), MinOf[int64]())
	assert.Equal(t, int64(math.MaxInt64), MaxOf[int64]())
	assert.Equal(t, math.MaxInt, MaxOf[int]())
}

func TestIncrement(t *testing.T) {
	v, err := Increment[int32](41)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	v, err = Increment[int32](math.MaxInt32)
	require.ErrorIs(t, err, errors.ErrOverflow)
	assert.Equal(t, int32(math.MaxInt32), v, "register must not wrap")
}

func TestDecrement(t *testing.T) {
	v, err := Decrement[int64](-41)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	_, err = Decrement[int64](math.MinInt64)
	require.ErrorIs(t, err, errors.ErrOverflow)
}

func TestOverflowUsesWidthOfType(t *testing.T) {
	// MaxInt32 is an ordinary value for a 64-bit counter.
	v, err := Increment[int64](math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt32)+1, v)

	v, err = Decrement[int64](math.MinInt32)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt32)-1, v)
}

func TestCounter_CountsUp(t *testing.T) {
	c := NewIncrementer[int32](-3)
	for want := int32(-3); want < 10; want++ {
		got, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.False(t, c.Exhausted())
	assert.Equal(t, Up, c.Direction())
}

func TestCounter_BoundaryReturnedOnce(t *testing.T) {
	t.Run("int32 up", func(t *testing.T) {
		c := NewIncrementer[int32](math.MaxInt32)
		v, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, int32(math.MaxInt32), v)
		assert.True(t, c.Exhausted())

		_, err = c.Next()
		require.ErrorIs(t, err, errors.ErrOverflow)
		_, err = c.Next()
		require.ErrorIs(t, err, errors.ErrOverflow, "counter stays terminal")
	})

	t.Run("int64 up", func(t *testing.T) {
		c := NewIncrementer[int64](math.MaxInt64 - 1)
		v, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64-1), v)
		v, err = c.Next()
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), v)
		_, err = c.Next()
		require.ErrorIs(t, err, errors.ErrOverflow)
	})

	t.Run("int32 down", func(t *testing.T) {
		c := NewDecrementer[int32](math.MinInt32)
		v, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, int32(math.MinInt32), v)
		_, err = c.Next()
		require.ErrorIs(t, err, errors.ErrOverflow)
	})

	t.Run("int64 down", func(t *testing.T) {
		c := NewDecrementer[int64](math.MinInt64)
		v, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, int64(math.MinInt64), v)
		_, err = c.Next()
		require.ErrorIs(t, err, errors.ErrOverflow)
	})
}

func TestCounter_OverflowErrorIsTerminal(t *testing.T) {
	c := NewIncrementer[int8](math.MaxInt8)
	_, _ = c.Next()
	_, err := c.Next()
	require.Error(t, err)
	assert.True(t, errors.IsTerminal(err))
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 8, appErr.Details["bits"])
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}
