// cache.go — parse-result caching by category sequence.
//
// WHAT THIS MODULE DOES
// ======================
// Parsing (chart.go) and ranking (rank.go) are the expensive steps of
// this pipeline; both depend only on a category sequence, never on
// surface text. Cache lets a Parser remember the winning treeSkeleton —
// or the fact that no tree won — for a category sequence it has already
// resolved, so that a later address tokenizing to the same sequence
// skips straight to projection.
//
// Cache is intentionally a minimal key-value contract rather than a
// concrete type, so a Parser can be built with no cache at all (the
// zero value, stateless and safe for concurrent use by construction),
// the package's own unsynchronized map-backed implementation, or an
// externally supplied bounded/evicting cache such as one backed by
// hashicorp/golang-lru.
package addrparse

import lru "github.com/hashicorp/golang-lru/v2"

// cacheEntry is the value a Cache stores: the winning skeleton, or a nil
// Skeleton recording that this category sequence was tried and found
// ambiguous/unparseable (worth remembering, so the chart parser isn't
// re-run on every repeat of an address we already know is unparseable).
type cacheEntry struct {
	Skeleton *treeSkeleton
	Found    bool
}

// Cache is the interface a Parser uses to memoize parse results keyed by
// category sequence. Implementations need not be safe for concurrent
// use unless documented otherwise; Parser never mutates a Cache from
// more than one goroutine on its own.
type Cache interface {
	Get(key string) (cacheEntry, bool)
	Set(key string, value cacheEntry)
}

// mapCache is an unbounded, unsynchronized, map-backed Cache that never
// evicts. It is not installed by default: a Parser built by New without
// WithCache has no cache at all.
type mapCache struct {
	m map[string]cacheEntry
}

func newMapCache() *mapCache {
	return &mapCache{m: make(map[string]cacheEntry)}
}

func (c *mapCache) Get(key string) (cacheEntry, bool) {
	v, ok := c.m[key]
	return v, ok
}

func (c *mapCache) Set(key string, value cacheEntry) {
	c.m[key] = value
}

// lruCache adapts hashicorp/golang-lru's fixed-capacity, thread-safe
// cache to the Cache interface, for callers who want an eviction bound
// instead of the default's unbounded growth (e.g. a long-lived service
// process parsing an open-ended stream of addresses).
type lruCache struct {
	c *lru.Cache[string, cacheEntry]
}

// NewLRUCache returns a Cache backed by a fixed-size LRU, suitable for
// passing to WithCache. size must be positive.
func NewLRUCache(size int) (Cache, error) {
	c, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &lruCache{c: c}, nil
}

func (c *lruCache) Get(key string) (cacheEntry, bool) {
	return c.c.Get(key)
}

func (c *lruCache) Set(key string, value cacheEntry) {
	c.c.Add(key, value)
}
