/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

	"github.com/asgardeo/rosteradmin/internal/system/log"
)

type inMemoryCacheEntry[T any] struct {
	CacheEntry[T]
	element     *list.Element
	accessCount int64
	lastAccess  time.Time
}

// inMemoryCache is a bounded map with TTL expiry and LRU or LFU eviction.
type inMemoryCache[T any] struct {
	name       string
	size       int
	ttl        time.Duration
	policy     evictionPolicy
	now        func() time.Time
	mu         sync.Mutex
	entries    map[CacheKey]*inMemoryCacheEntry[T]
	order      *list.List
	hitCount   int64
	missCount  int64
	evictCount int64
}

func newInMemoryCache[T any](name string, size int, ttl time.Duration, policy evictionPolicy) *inMemoryCache[T] {
	return &inMemoryCache[T]{
		name:    name,
		size:    size,
		ttl:     ttl,
		policy:  policy,
		now:     time.Now,
		entries: make(map[CacheKey]*inMemoryCacheEntry[T]),
		order:   list.New(),
	}
}

// GetName returns the name of the cache.
func (c *inMemoryCache[T]) GetName() string {
	return c.name
}

// Set adds or replaces an entry, evicting one entry when the cache is full.
func (c *inMemoryCache[T]) Set(key CacheKey, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if entry, ok := c.entries[key]; ok {
		entry.Value = value
		entry.ExpiryTime = now.Add(c.ttl)
		c.touch(entry, now)
		return
	}

	if len(c.entries) >= c.size {
		c.evict()
	}
	entry := &inMemoryCacheEntry[T]{
		CacheEntry: CacheEntry[T]{Value: value, ExpiryTime: now.Add(c.ttl)},
		element:    c.order.PushFront(key),
		lastAccess: now,
	}
	c.entries[key] = entry
}

// Get returns the value for the key if present and not expired.
func (c *inMemoryCache[T]) Get(key CacheKey) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	entry, ok := c.entries[key]
	if !ok {
		c.missCount++
		return zero, false
	}
	now := c.now()
	if now.After(entry.ExpiryTime) {
		c.remove(key, entry)
		c.missCount++
		return zero, false
	}
	c.touch(entry, now)
	c.hitCount++
	return entry.Value, true
}

// Delete removes the entry for the key.
func (c *inMemoryCache[T]) Delete(key CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.remove(key, entry)
	}
}

// Clear removes every entry and resets the statistics.
func (c *inMemoryCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[CacheKey]*inMemoryCacheEntry[T])
	c.order.Init()
	c.hitCount, c.missCount, c.evictCount = 0, 0, 0
}

// IsEnabled returns true for an in-memory cache.
func (c *inMemoryCache[T]) IsEnabled() bool {
	return true
}

// GetStats returns the cache statistics.
func (c *inMemoryCache[T]) GetStats() CacheStat {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if total := c.hitCount + c.missCount; total > 0 {
		hitRate = float64(c.hitCount) / float64(total)
	}
	return CacheStat{
		Enabled:    true,
		Size:       len(c.entries),
		MaxSize:    c.size,
		HitCount:   c.hitCount,
		MissCount:  c.missCount,
		HitRate:    hitRate,
		EvictCount: c.evictCount,
	}
}

// CleanupExpired removes expired entries and returns how many were removed.
func (c *inMemoryCache[T]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	cleaned := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiryTime) {
			c.remove(key, entry)
			cleaned++
		}
	}
	if cleaned > 0 {
		log.GetLogger().Debug("Expired cache entries cleaned", log.String("cacheName", c.name),
			log.Int("count", cleaned))
	}
	return cleaned
}

func (c *inMemoryCache[T]) touch(entry *inMemoryCacheEntry[T], now time.Time) {
	entry.accessCount++
	entry.lastAccess = now
	c.order.MoveToFront(entry.element)
}

func (c *inMemoryCache[T]) remove(key CacheKey, entry *inMemoryCacheEntry[T]) {
	delete(c.entries, key)
	c.order.Remove(entry.element)
}

// evict drops the least recently used entry, or for LFU the least accessed entry
// with the oldest access as the tie breaker.
func (c *inMemoryCache[T]) evict() {
	var victim *list.Element
	if c.policy == evictionPolicyLFU {
		var best *inMemoryCacheEntry[T]
		for e := c.order.Back(); e != nil; e = e.Prev() {
			entry := c.entries[e.Value.(CacheKey)]
			if best == nil || entry.accessCount < best.accessCount {
				best = entry
				victim = e
			}
		}
	} else {
		victim = c.order.Back()
	}
	if victim == nil {
		return
	}
	key := victim.Value.(CacheKey)
	c.remove(key, c.entries[key])
	c.evictCount++
}
