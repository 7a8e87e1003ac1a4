package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("cache: key not found")

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

// Singular caches exactly one value of T.
type Singular[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	key string

	c *cache.Cache
}

func (c *Singular[T]) Get() (T, error) {
	result, ok := c.c.Get(c.key)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return result.(T), nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) {
	c.c.Set(c.key, value, expire)
}

// MutexGetSet returns the cached value, or runs valueFunc and caches its result when
// the key is absent. Concurrent misses are serialized so valueFunc runs once per expiry.
// A non-positive expire bypasses the cache entirely.
func (c *Singular[T]) MutexGetSet(valueFunc func() (T, error), expire time.Duration) (T, error) {
	if expire <= 0 {
		return valueFunc()
	}

	if v, err := c.Get(); err == nil {
		return v, nil
	}
	// onwards, cache key does not exist

	return c.slowMutexGetSet(valueFunc, expire)
}

func (c *Singular[T]) slowMutexGetSet(valueFunc func() (T, error), expire time.Duration) (T, error) {
	c.m.Lock()
	defer c.m.Unlock()

	if v, err := c.Get(); err == nil {
		return v, nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to get value from valueFunc() in MutexGetSet")
		return value, err
	}

	c.Set(value, expire)
	return value, nil
}

func (c *Singular[T]) Delete() error {
	c.c.Flush()
	return nil
}
