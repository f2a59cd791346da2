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

// Package cache provides a centralized cache management system for different cache implementations.
package cache

import (
	"time"

	"github.com/asgardeo/flowcomposer/internal/system/config"
	"github.com/asgardeo/flowcomposer/internal/system/log"
)

// internalCacheInterface defines the common interface for internal cache implementations.
type internalCacheInterface[T any] interface {
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	GetStats() CacheStat
	CleanupExpired()
	GetName() string
}

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	CleanupExpired()
}

// Cache implements the CacheInterface for individual caches.
type Cache[T any] struct {
	enabled       bool
	cacheName     string
	internalCache internalCacheInterface[T]
}

// newCache creates a new cache instance.
func newCache[T any](cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	cacheConfig := config.GetComposerRuntime().Config.Cache
	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning empty")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	cacheProperty := getCacheProperty(cacheConfig, cacheName)
	if cacheProperty.Disabled {
		logger.Debug("Individual cache is disabled, returning empty")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	size := cacheProperty.Size
	if size <= 0 {
		size = cacheConfig.Size
	}

	ttl := cacheProperty.TTL
	if ttl <= 0 {
		ttl = cacheConfig.TTL
	}

	logger.Debug("Initializing the cache", log.Int("size", size), log.Int("ttl", ttl))

	return &Cache[T]{
		enabled:       true,
		cacheName:     cacheName,
		internalCache: newInMemoryCache[T](cacheName, true, size, time.Duration(ttl)*time.Second),
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.cacheName
}

// Set stores a value in the cache.
func (c *Cache[T]) Set(key CacheKey, value T) error {
	if c.IsEnabled() {
		if err := c.internalCache.Set(key, value); err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
				log.String("cacheName", c.cacheName)).
				Warn("Failed to set value in the cache", log.String("key", key.ToString()), log.Error(err))
		}
	}
	return nil
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	if c.IsEnabled() {
		if value, found := c.internalCache.Get(key); found {
			return value, true
		}
	}

	var zero T
	return zero, false
}

// Delete removes a value from the cache.
func (c *Cache[T]) Delete(key CacheKey) error {
	if c.IsEnabled() {
		if err := c.internalCache.Delete(key); err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
				log.String("cacheName", c.cacheName)).
				Warn("Failed to delete value from the cache", log.String("key", key.ToString()), log.Error(err))
		}
	}
	return nil
}

// Clear removes all entries in the cache.
func (c *Cache[T]) Clear() error {
	if c.IsEnabled() {
		if err := c.internalCache.Clear(); err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
				log.String("cacheName", c.cacheName)).
				Warn("Failed to clear the cache", log.Error(err))
		}
	}
	return nil
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled && c.internalCache != nil && c.internalCache.IsEnabled()
}

// CleanupExpired cleans up expired entries in the cache.
func (c *Cache[T]) CleanupExpired() {
	if c.IsEnabled() {
		c.internalCache.CleanupExpired()
	}
}

// getCacheProperty retrieves the property block for the named cache from the configuration.
func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{Name: cacheName}
}
