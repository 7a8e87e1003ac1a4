package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingularMutexGetSet(t *testing.T) {
	c := NewSingular[[]int]("numbers")

	var calls int32
	load := func() ([]int, error) {
		atomic.AddInt32(&calls, 1)
		return []int{1, 2, 3}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.MutexGetSet(load, time.Minute)
			assert.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSingularBypassWithoutExpiry(t *testing.T) {
	c := NewSingular[int]("n")

	var calls int
	load := func() (int, error) {
		calls++
		return calls, nil
	}

	first, err := c.MutexGetSet(load, 0)
	require.NoError(t, err)
	second, err := c.MutexGetSet(load, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	_, err = c.Get()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSingularDoesNotCacheErrors(t *testing.T) {
	c := NewSingular[string]("s")
	boom := errors.New("boom")

	_, err := c.MutexGetSet(func() (string, error) { return "", boom }, time.Minute)
	assert.ErrorIs(t, err, boom)

	v, err := c.MutexGetSet(func() (string, error) { return "ok", nil }, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	require.NoError(t, c.Delete())
	_, err = c.Get()
	assert.ErrorIs(t, err, ErrNotFound)
}
