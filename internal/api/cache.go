package api

import "sync"

// listCache memoizes decoded list responses per resource and parameter
// set. A mutation on a resource invalidates every cached entry for that
// resource, so the next read refetches; cached lists are never patched
// in place.
type listCache struct {
	mu      sync.Mutex
	entries map[string]map[string]any
}

func newListCache() *listCache {
	return &listCache{entries: make(map[string]map[string]any)}
}

func (lc *listCache) get(resource, key string) (any, bool) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	byKey, ok := lc.entries[resource]
	if !ok {
		return nil, false
	}
	v, ok := byKey[key]
	return v, ok
}

func (lc *listCache) put(resource, key string, v any) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	byKey, ok := lc.entries[resource]
	if !ok {
		byKey = make(map[string]any)
		lc.entries[resource] = byKey
	}
	byKey[key] = v
}

func (lc *listCache) invalidate(resource string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	delete(lc.entries, resource)
}

// InvalidateCache discards cached list data for a logical resource name
// (for callers that mutate state outside this client).
func (c *Client) InvalidateCache(resource string) {
	c.cache.invalidate(resource)
}
