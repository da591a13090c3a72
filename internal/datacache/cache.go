// Package datacache caches parsed survey datasets by path so every filter
// interaction does not re-read the source file. Entries expire by wall-clock
// TTL measured from load time, not by content hash: a file changed inside
// the window is only picked up after expiry or an explicit ForceReload.
package datacache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/adapters/csvfile"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// Clock supplies the current time; injectable so tests control expiry.
type Clock func() time.Time

// LoadFunc loads a dataset from a path.
type LoadFunc func(path string) (survey.Dataset, error)

type entry struct {
	dataset  survey.Dataset
	loadedAt time.Time
}

// Cache is a TTL dataset cache. Concurrent misses for the same path share a
// single load via singleflight.
type Cache struct {
	ttl  time.Duration
	now  Clock
	load LoadFunc

	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the wall clock, for tests.
func WithClock(clock Clock) Option {
	return func(c *Cache) { c.now = clock }
}

// WithLoader replaces the CSV loader, for tests.
func WithLoader(load LoadFunc) Option {
	return func(c *Cache) { c.load = load }
}

// New creates a cache with the given TTL.
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		load:    csvfile.Load,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached dataset for path when fresh, otherwise loads it.
// Load errors are returned and never cached.
func (c *Cache) Get(path string) (survey.Dataset, error) {
	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && c.now().Sub(e.loadedAt) < c.ttl {
		return e.dataset, nil
	}
	return c.reload(path)
}

// ForceReload bypasses the freshness check and re-reads path immediately.
func (c *Cache) ForceReload(path string) (survey.Dataset, error) {
	return c.reload(path)
}

// Invalidate drops the cache entry for path so the next Get re-reads it.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

func (c *Cache) reload(path string) (survey.Dataset, error) {
	v, err, _ := c.group.Do(path, func() (interface{}, error) {
		dataset, err := c.load(path)
		if err != nil {
			return survey.Dataset{}, err
		}
		c.mu.Lock()
		c.entries[path] = entry{dataset: dataset, loadedAt: c.now()}
		c.mu.Unlock()
		return dataset, nil
	})
	if err != nil {
		return survey.Dataset{}, err
	}
	return v.(survey.Dataset), nil
}
