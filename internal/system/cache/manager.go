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
	"sync"
	"time"

	"github.com/asgardeo/flowcomposer/internal/system/config"
	"github.com/asgardeo/flowcomposer/internal/system/log"
)

const defaultCleanupInterval = 300

// cleanupCapable is implemented by caches that can evict expired entries.
type cleanupCapable interface {
	CleanupExpired()
}

// CacheManagerInterface defines the centralized cache maintenance functionality.
type CacheManagerInterface interface {
	Init()
}

// CacheManager runs periodic cleanup over every registered cache.
type CacheManager struct {
	initOnce sync.Once
}

var (
	managerInstance *CacheManager
	managerOnce     sync.Once
)

// GetCacheManager returns a singleton instance of CacheManager.
func GetCacheManager() CacheManagerInterface {
	managerOnce.Do(func() {
		managerInstance = &CacheManager{}
	})
	return managerInstance
}

// Init starts the periodic cleanup of expired cache entries. Subsequent calls
// are no-ops.
func (cm *CacheManager) Init() {
	cm.initOnce.Do(func() {
		cacheConfig := config.GetComposerRuntime().Config.Cache
		if cacheConfig.Disabled {
			return
		}

		interval := cacheConfig.CleanupInterval
		if interval <= 0 {
			interval = defaultCleanupInterval
		}

		go cm.runCleanupLoop(time.Duration(interval) * time.Second)
	})
}

func (cm *CacheManager) runCleanupLoop(interval time.Duration) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheManager"))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		logger.Debug("Running cache cleanup cycle")
		cs := getCacheStore()

		cs.mu.RLock()
		caches := make([]interface{}, 0, len(cs.caches))
		for _, c := range cs.caches {
			caches = append(caches, c)
		}
		cs.mu.RUnlock()

		for _, c := range caches {
			if cleanable, ok := c.(cleanupCapable); ok {
				cleanable.CleanupExpired()
			}
		}
	}
}
