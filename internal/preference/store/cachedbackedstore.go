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

package store

import (
	"github.com/asgardeo/flowcomposer/internal/preference/model"
	"github.com/asgardeo/flowcomposer/internal/system/cache"
	"github.com/asgardeo/flowcomposer/internal/system/log"
)

const cachedStoreLoggerComponentName = "CachedBackedPreferenceStore"

// CachedBackedPreferenceStore is the implementation of PreferenceStoreInterface that uses caching.
type CachedBackedPreferenceStore struct {
	PreferenceCache cache.CacheInterface[string]
	Store           PreferenceStoreInterface
}

// NewCachedBackedPreferenceStore creates a new instance of CachedBackedPreferenceStore.
func NewCachedBackedPreferenceStore() PreferenceStoreInterface {
	return &CachedBackedPreferenceStore{
		PreferenceCache: cache.GetCache[string]("UserPreferenceCache"),
		Store:           NewPreferenceStore(),
	}
}

// GetPreference retrieves the stored value for the user and key, using cache if available.
func (ps *CachedBackedPreferenceStore) GetPreference(userID, key string) (string, error) {
	cacheKey := cache.CacheKey{
		Key: userID + ":" + key,
	}
	cachedValue, ok := ps.PreferenceCache.Get(cacheKey)
	if ok {
		return cachedValue, nil
	}

	value, err := ps.Store.GetPreference(userID, key)
	if err != nil {
		return "", err
	}
	ps.cachePreference(cacheKey, value)

	return value, nil
}

// UpsertPreference stores the preference and refreshes the cached value.
func (ps *CachedBackedPreferenceStore) UpsertPreference(preference model.UserPreference) error {
	if err := ps.Store.UpsertPreference(preference); err != nil {
		return err
	}

	cacheKey := cache.CacheKey{
		Key: preference.UserID + ":" + preference.Key,
	}
	ps.cachePreference(cacheKey, preference.Value)

	return nil
}

// DeletePreference removes the stored value and invalidates the cached entry.
func (ps *CachedBackedPreferenceStore) DeletePreference(userID, key string) error {
	if err := ps.Store.DeletePreference(userID, key); err != nil {
		return err
	}

	cacheKey := cache.CacheKey{
		Key: userID + ":" + key,
	}
	if err := ps.PreferenceCache.Delete(cacheKey); err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, cachedStoreLoggerComponentName))
		logger.Error("Failed to invalidate cached preference", log.Error(err))
	}

	return nil
}

func (ps *CachedBackedPreferenceStore) cachePreference(cacheKey cache.CacheKey, value string) {
	if err := ps.PreferenceCache.Set(cacheKey, value); err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, cachedStoreLoggerComponentName))
		logger.Error("Failed to cache preference", log.Error(err))
	}
}
