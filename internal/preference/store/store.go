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

// Package store provides functionality for handling user preference persistence.
package store

import (
	"errors"
	"fmt"

	"github.com/asgardeo/flowcomposer/internal/preference/model"
	"github.com/asgardeo/flowcomposer/internal/system/database/provider"
	"github.com/asgardeo/flowcomposer/internal/system/log"
)

const loggerComponentName = "PreferencePersistence"

// ErrPreferenceNotFound is returned when no value is stored for the user and key.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceStoreInterface defines the storage operations for user preferences.
type PreferenceStoreInterface interface {
	GetPreference(userID, key string) (string, error)
	UpsertPreference(preference model.UserPreference) error
	DeletePreference(userID, key string) error
}

// PreferenceStore is the database backed implementation of PreferenceStoreInterface.
type PreferenceStore struct {
	dbProvider provider.DBProviderInterface
}

// NewPreferenceStore creates a new instance of PreferenceStore.
func NewPreferenceStore() PreferenceStoreInterface {
	return &PreferenceStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// GetPreference retrieves the stored value for the user and key.
func (ps *PreferenceStore) GetPreference(userID, key string) (string, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ps.dbProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return "", fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetPreferenceByUserAndKey, userID, key)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return "", ErrPreferenceNotFound
	}
	if len(results) > 1 {
		return "", fmt.Errorf("unexpected number of results: %d", len(results))
	}

	value, ok := results[0]["pref_value"].(string)
	if !ok {
		return "", errors.New("failed to parse pref_value as string")
	}

	return value, nil
}

// UpsertPreference stores the preference, replacing any existing value for
// the user and key.
func (ps *PreferenceStore) UpsertPreference(preference model.UserPreference) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ps.dbProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryUpsertPreference, preference.UserID, preference.Key, preference.Value)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeletePreference removes the stored value for the user and key.
func (ps *PreferenceStore) DeletePreference(userID, key string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ps.dbProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryDeletePreferenceByUserAndKey, userID, key)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
