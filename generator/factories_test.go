package generator

import (
	stderrors "errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/genc/errors"
)

func TestCreate(t *testing.T) {
	g := Create("same")
	assert.Equal(t, []string{"same", "same", "same"}, pull(t, g, 3))
}

func TestFunction(t *testing.T) {
	n := 0
	g, err := Function(func() (int, error) {
		n++
		return n * 10, nil
	})
	require.NoError(t, err)
	assert.Zero(t, n, "fn must not run before the first pull")
	assert.Equal(t, []int{10, 20, 30}, pull(t, g, 3))
}

func TestFunction_PropagatesError(t *testing.T) {
	boom := stderrors.New("boom")
	g, err := Function(func() (string, error) { return "", boom })
	require.NoError(t, err)

	_, err = g.Generate()
	assert.Same(t, boom, err, "errors from fn are returned unchanged")
}

func TestFunction_NilFn(t *testing.T) {
	g, err := Function[int](nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Nil(t, g)
}

func TestFunc_Adapter(t *testing.T) {
	var g Generator[int] = Func[int](func() (int, error) { return 7, nil })
	v, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestMust(t *testing.T) {
	g := Must(Function(func() (int, error) { return 1, nil }))
	assert.NotNil(t, g)
	assert.Panics(t, func() { Must(Function[int](nil)) })
}

func TestLazy_InvokesOnce(t *testing.T) {
	calls := 0
	g, err := Lazy(func() (string, error) {
		calls++
		return "value", nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls, "thunk must not run at construction")

	assert.Equal(t, []string{"value", "value", "value", "value"}, pull(t, g, 4))
	assert.Equal(t, 1, calls)
}

func TestLazy_ConcurrentPullsInvokeOnce(t *testing.T) {
	var calls atomic.Int32
	g, err := Lazy(func() (int, error) {
		calls.Add(1)
		return 42, nil
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := g.Generate()
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestLazy_CachesError(t *testing.T) {
	calls := 0
	boom := stderrors.New("boom")
	g, err := Lazy(func() (int, error) {
		calls++
		return 0, boom
	})
	require.NoError(t, err)

	_, err = g.Generate()
	assert.Same(t, boom, err)
	_, err = g.Generate()
	assert.Same(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestLazy_NilFn(t *testing.T) {
	_, err := Lazy[int](nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestCircularSequence_Replays(t *testing.T) {
	g, err := CircularSequence(slices.Values([]string{"a", "b", "c"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c", "a"}, pull(t, g, 7))
}

func TestCircularSequence_SingleElement(t *testing.T) {
	g, err := CircularSequence(slices.Values([]int{9}))
	require.NoError(t, err)
	assert.Equal(t, []int{9, 9, 9}, pull(t, g, 3))
}

func TestCircularSequence_LongRun(t *testing.T) {
	g, err := CircularSequence(slices.Values([]int{0, 1, 2, 3, 4}))
	require.NoError(t, err)
	for i, v := range pull(t, g, 10000) {
		require.Equal(t, i%5, v)
	}
}

func TestCircularSequence_SourceReadOnFirstPull(t *testing.T) {
	read := false
	seq := func(yield func(int) bool) {
		read = true
		for _, v := range []int{1, 2} {
			if !yield(v) {
				return
			}
		}
	}
	g, err := CircularSequence(seq)
	require.NoError(t, err)
	assert.False(t, read)

	_, err = g.Generate()
	require.NoError(t, err)
	assert.True(t, read)
}

func TestCircularSequence_Nil(t *testing.T) {
	_, err := CircularSequence[int](nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestCircularSequence_Empty(t *testing.T) {
	g, err := CircularSequence(slices.Values([]int{}))
	require.NoError(t, err)

	_, err = g.Generate()
	require.ErrorIs(t, err, errors.ErrEmptySource)
	assert.True(t, errors.IsTerminal(err))
}
