/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"container/list"
	"sync"
	"time"
)

// inMemoryCacheEntry represents an entry in the in-memory cache with access metadata.
type inMemoryCacheEntry[T any] struct {
	*CacheEntry[T]
	key         CacheKey
	listElement *list.Element
}

// inMemoryCache implements the internal cache interface with LRU eviction and TTL expiry.
type inMemoryCache[T any] struct {
	enabled     bool
	name        string
	cache       map[CacheKey]*inMemoryCacheEntry[T]
	accessOrder *list.List
	mu          sync.RWMutex
	size        int
	ttl         time.Duration
	hitCount    int64
	missCount   int64
}

// newInMemoryCache creates a new instance of inMemoryCache.
func newInMemoryCache[T any](name string, enabled bool, size int, ttl time.Duration) internalCacheInterface[T] {
	if !enabled {
		return &inMemoryCache[T]{
			name:    name,
			enabled: false,
		}
	}

	cacheSize := size
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	cacheTTL := ttl
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL * time.Second
	}

	return &inMemoryCache[T]{
		enabled:     true,
		name:        name,
		cache:       make(map[CacheKey]*inMemoryCacheEntry[T]),
		accessOrder: list.New(),
		size:        cacheSize,
		ttl:         cacheTTL,
	}
}

// GetName returns the name of the cache.
func (c *inMemoryCache[T]) GetName() string {
	return c.name
}

// IsEnabled returns whether the cache is enabled.
func (c *inMemoryCache[T]) IsEnabled() bool {
	return c.enabled
}

// Set stores a value in the cache, evicting the least recently used entry when full.
func (c *inMemoryCache[T]) Set(key CacheKey, value T) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, found := c.cache[key]; found {
		existing.Value = value
		existing.ExpiryTime = time.Now().Add(c.ttl)
		c.accessOrder.MoveToFront(existing.listElement)
		return nil
	}

	if len(c.cache) >= c.size {
		c.evictOldest()
	}

	entry := &inMemoryCacheEntry[T]{
		CacheEntry: &CacheEntry[T]{
			Value:      value,
			ExpiryTime: time.Now().Add(c.ttl),
		},
		key: key,
	}
	entry.listElement = c.accessOrder.PushFront(entry)
	c.cache[key] = entry

	return nil
}

// Get retrieves a value from the cache.
func (c *inMemoryCache[T]) Get(key CacheKey) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, found := c.cache[key]
	if !found {
		c.missCount++
		return zero, false
	}

	if time.Now().After(entry.ExpiryTime) {
		c.removeEntry(entry)
		c.missCount++
		return zero, false
	}

	c.accessOrder.MoveToFront(entry.listElement)
	c.hitCount++
	return entry.Value, true
}

// Delete removes a value from the cache.
func (c *inMemoryCache[T]) Delete(key CacheKey) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, found := c.cache[key]; found {
		c.removeEntry(entry)
	}
	return nil
}

// Clear removes all entries in the cache.
func (c *inMemoryCache[T]) Clear() error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[CacheKey]*inMemoryCacheEntry[T])
	c.accessOrder.Init()
	return nil
}

// CleanupExpired removes all expired entries from the cache.
func (c *inMemoryCache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.cache {
		if now.After(entry.ExpiryTime) {
			c.removeEntry(entry)
		}
	}
}

// GetStats returns the statistics of the cache.
func (c *inMemoryCache[T]) GetStats() CacheStat {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStat{
		Enabled:   c.enabled,
		Size:      len(c.cache),
		MaxSize:   c.size,
		HitCount:  c.hitCount,
		MissCount: c.missCount,
	}
}

// evictOldest removes the least recently used entry. Caller must hold the lock.
func (c *inMemoryCache[T]) evictOldest() {
	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}
	c.removeEntry(oldest.Value.(*inMemoryCacheEntry[T]))
}

// removeEntry removes an entry from the map and access list. Caller must hold the lock.
func (c *inMemoryCache[T]) removeEntry(entry *inMemoryCacheEntry[T]) {
	c.accessOrder.Remove(entry.listElement)
	delete(c.cache, entry.key)
}
