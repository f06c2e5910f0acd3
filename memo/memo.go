// Package memo provides a small call-result cache and a wall-clock timing
// wrapper.
//
// A Cache is an explicit object rather than hidden package state so that
// callers control its lifetime and tests stay isolated. All operations are
// safe for concurrent use.
package memo

import (
	"reflect"
	"sync"
)

// Cache stores the results of function calls keyed by an arbitrary
// comparable value. It has no eviction; entries live as long as the cache.
type Cache struct {
	mu      sync.Mutex
	results map[any]any
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{results: make(map[any]any)}
}

// Do returns the cached result for key, invoking fn and storing its result
// on the first call. If fn returns a non-nil error the result is not cached.
//
// A key that is not comparable (a slice, map or func, or a struct
// containing one) cannot index the cache; such calls bypass caching and
// invoke fn every time. That is a deliberate fallback, not a failure.
func (c *Cache) Do(key any, fn func() (any, error)) (any, error) {
	if !comparableKey(key) {
		return fn()
	}

	c.mu.Lock()
	if v, ok := c.results[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err := fn()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Another caller may have stored a value meanwhile; keep the first.
	if prev, ok := c.results[key]; ok {
		v = prev
	} else {
		c.results[key] = v
	}
	c.mu.Unlock()
	return v, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

func comparableKey(key any) bool {
	if key == nil {
		return true
	}
	return reflect.TypeOf(key).Comparable()
}

// Func1 wraps a single-argument pure function with a private cache. The
// wrapped function is invoked at most once per distinct argument.
func Func1[A comparable, R any](fn func(A) R) func(A) R {
	var mu sync.Mutex
	cache := make(map[A]R)
	return func(a A) R {
		mu.Lock()
		if r, ok := cache[a]; ok {
			mu.Unlock()
			return r
		}
		mu.Unlock()

		r := fn(a)

		mu.Lock()
		if prev, ok := cache[a]; ok {
			r = prev
		} else {
			cache[a] = r
		}
		mu.Unlock()
		return r
	}
}
