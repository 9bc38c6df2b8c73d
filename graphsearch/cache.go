package graphsearch

import (
	"sync"

	"github.com/katalvlaran/soco/schedule"
)

// layerEntry is the best known partial schedule reaching a configuration
// at the current layer, together with its accumulated cost.
type layerEntry struct {
	config   schedule.Config
	schedule schedule.Schedule
	cost     float64
}

// Layer maps a configuration's cache key (see configKey) to the best
// entry reaching it at the layer's time slot.
type Layer map[string]layerEntry

// Cache lets successive Search calls that differ only in an extended
// horizon resume from a previously computed layer instead of
// recomputing it. It is keyed by (problem fingerprint, time slot,
// inverted flag); Search never relies on a Cache being present. The
// fingerprint does not cover the hitting cost, so a cache shared across
// problems of the same shape but different hitting costs returns layers
// computed for another problem.
type Cache interface {
	Load(fingerprint string, t int, inverted bool) (Layer, bool)
	Store(fingerprint string, t int, inverted bool, layer Layer)
}

type cacheKey struct {
	fingerprint string
	t           int
	inverted    bool
}

// MapCache is an in-memory Cache guarded by a sync.RWMutex, safe for
// concurrent use by Search calls running against different Problems. A
// single Search call is itself single-threaded; the lock only protects
// the shared map from concurrent Search invocations.
type MapCache struct {
	mu   sync.RWMutex
	data map[cacheKey]Layer
}

// NewMapCache returns an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{data: make(map[cacheKey]Layer)}
}

// Load implements Cache.
func (c *MapCache) Load(fingerprint string, t int, inverted bool) (Layer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	layer, ok := c.data[cacheKey{fingerprint, t, inverted}]
	return layer, ok
}

// Store implements Cache.
func (c *MapCache) Store(fingerprint string, t int, inverted bool, layer Layer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheKey{fingerprint, t, inverted}] = layer
}
