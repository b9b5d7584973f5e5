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

// Package cache provides named in-memory caches configured from the deployment configuration.
package cache

import (
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/config"
	"github.com/asgardeo/rosteradmin/internal/system/log"
)

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T)
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey)
	Clear()
	IsEnabled() bool
	GetStats() CacheStat
	CleanupExpired() int
}

// NewCache creates the named cache described by the cache configuration.
// A disabled cache accepts writes and never returns a hit.
func NewCache[T any](cacheConfig config.CacheConfig, cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	property := getCacheProperty(cacheConfig, cacheName)
	if cacheConfig.Disabled || property.Disabled {
		logger.Debug("Caching is disabled")
		return &disabledCache[T]{name: cacheName}
	}

	if cacheConfig.Type != "" && cacheConfig.Type != cacheTypeInMemory {
		logger.Warn("Unknown cache type, defaulting to in-memory cache", log.String("type", cacheConfig.Type))
	}

	size := firstPositive(property.Size, cacheConfig.Size, defaultCacheSize)
	ttl := firstPositive(property.TTL, cacheConfig.TTL, defaultCacheTTL)
	policy := getEvictionPolicy(cacheConfig, property)

	logger.Debug("Initializing in-memory cache", log.Int("size", size), log.Int("ttl", ttl),
		log.String("evictionPolicy", string(policy)))
	return newInMemoryCache[T](cacheName, size, time.Duration(ttl)*time.Second, policy)
}

func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{}
}

func getEvictionPolicy(cacheConfig config.CacheConfig, property config.CacheProperty) evictionPolicy {
	policy := property.EvictionPolicy
	if policy == "" {
		policy = cacheConfig.EvictionPolicy
	}
	switch evictionPolicy(policy) {
	case evictionPolicyLFU:
		return evictionPolicyLFU
	case evictionPolicyLRU, "":
		return evictionPolicyLRU
	default:
		log.GetLogger().Warn("Unknown eviction policy, defaulting to LRU", log.String("policy", policy))
		return evictionPolicyLRU
	}
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// disabledCache is returned when caching is turned off.
type disabledCache[T any] struct {
	name string
}

func (c *disabledCache[T]) GetName() string { return c.name }

func (c *disabledCache[T]) Set(CacheKey, T) {}

func (c *disabledCache[T]) Get(CacheKey) (T, bool) {
	var zero T
	return zero, false
}

func (c *disabledCache[T]) Delete(CacheKey) {}

func (c *disabledCache[T]) Clear() {}

func (c *disabledCache[T]) IsEnabled() bool { return false }

func (c *disabledCache[T]) GetStats() CacheStat { return CacheStat{Enabled: false} }

func (c *disabledCache[T]) CleanupExpired() int { return 0 }
