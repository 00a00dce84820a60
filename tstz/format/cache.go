package format

import (
	"math"
	"sync"
)

const (
	// CacheEntries bounds how many compiled pictures a Cache retains.
	CacheEntries = 20

	// maxCachedLen is the longest picture worth caching. Longer pictures
	// are compiled per call and discarded so entries stay small.
	maxCachedLen = 128
)

type cacheEntry struct {
	picture string
	std     bool
	nodes   []Node
	age     int
	valid   bool
}

// Cache retains compiled pictures so repeated calls with the same picture
// skip the tokenizer. Eviction replaces the entry with the smallest age,
// preferring slots whose compilation never completed. A Cache is safe for
// concurrent use. The zero value is ready; the package-level Format
// functions share one instance.
type Cache struct {
	mu      sync.Mutex
	entries []*cacheEntry

	// counter is the shared age source. Every hit or insert bumps it, so
	// the largest age in entries always equals the counter.
	counter int
}

// NewCache returns an empty cache. Constructing per-test caches keeps
// eviction behavior observable in isolation.
func NewCache() *Cache {
	return &Cache{entries: make([]*cacheEntry, 0, CacheEntries)}
}

var defaultCache = NewCache()

// Fetch returns the compiled form of picture, compiling and inserting on a
// miss. A picture longer than the cache limit is compiled without touching
// the cache. A failed compile never leaves a valid entry behind.
func (c *Cache) Fetch(picture string, std bool) ([]Node, error) {
	if len(picture) > maxCachedLen {
		return Compile(picture, std)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent := c.search(picture, std); ent != nil {
		return ent.nodes, nil
	}

	ent := c.take(picture, std)
	nodes, err := Compile(picture, std)
	if err != nil {
		return nil, err
	}
	ent.nodes = nodes
	ent.valid = true
	return nodes, nil
}

// Len reports how many slots are occupied, valid or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// search returns the valid entry for picture, refreshing its age, or nil.
func (c *Cache) search(picture string, std bool) *cacheEntry {
	c.guard()
	for _, ent := range c.entries {
		if ent.valid && ent.std == std && ent.picture == picture {
			c.counter++
			ent.age = c.counter
			return ent
		}
	}
	return nil
}

// take claims a slot for picture: a fresh one while capacity remains,
// otherwise the first invalid slot, otherwise the minimum-age one. The
// caller fills nodes and marks the entry valid after compiling.
func (c *Cache) take(picture string, std bool) *cacheEntry {
	c.guard()
	if len(c.entries) < CacheEntries {
		ent := &cacheEntry{picture: picture, std: std}
		c.counter++
		ent.age = c.counter
		c.entries = append(c.entries, ent)
		return ent
	}

	old := c.entries[0]
	if old.valid {
		for _, ent := range c.entries[1:] {
			if !ent.valid {
				old = ent
				break
			}
			if ent.age < old.age {
				old = ent
			}
		}
	}
	old.valid = false
	old.picture = picture
	old.std = std
	old.nodes = nil
	c.counter++
	old.age = c.counter
	return old
}

// guard halves every age when the counter nears overflow, preserving the
// relative recency order while resetting the absolute scale.
func (c *Cache) guard() {
	if c.counter >= math.MaxInt-1 {
		for _, ent := range c.entries {
			ent.age >>= 1
		}
		c.counter >>= 1
	}
}
