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

// Package preferencestoremock provides mock implementations of the preference
// store interfaces for testing.
package preferencestoremock

import (
	"github.com/asgardeo/flowcomposer/internal/preference/model"
	"github.com/asgardeo/flowcomposer/internal/preference/store"
)

// MockPreferenceStore is a mock implementation of the PreferenceStoreInterface.
type MockPreferenceStore struct {
	// MockGetPreference defines the behavior for the GetPreference method.
	MockGetPreference func(userID, key string) (string, error)

	// MockUpsertPreference defines the behavior for the UpsertPreference method.
	MockUpsertPreference func(preference model.UserPreference) error

	// MockDeletePreference defines the behavior for the DeletePreference method.
	MockDeletePreference func(userID, key string) error

	// UpsertCalls tracks the arguments passed to UpsertPreference.
	UpsertCalls []model.UserPreference

	// DeleteCalls tracks the arguments passed to DeletePreference.
	DeleteCalls []string
}

// GetPreference mocks the GetPreference method of the PreferenceStoreInterface.
func (m *MockPreferenceStore) GetPreference(userID, key string) (string, error) {
	if m.MockGetPreference != nil {
		return m.MockGetPreference(userID, key)
	}
	return "", store.ErrPreferenceNotFound
}

// UpsertPreference mocks the UpsertPreference method of the PreferenceStoreInterface.
func (m *MockPreferenceStore) UpsertPreference(preference model.UserPreference) error {
	m.UpsertCalls = append(m.UpsertCalls, preference)

	if m.MockUpsertPreference != nil {
		return m.MockUpsertPreference(preference)
	}
	return nil
}

// DeletePreference mocks the DeletePreference method of the PreferenceStoreInterface.
func (m *MockPreferenceStore) DeletePreference(userID, key string) error {
	m.DeleteCalls = append(m.DeleteCalls, userID+":"+key)

	if m.MockDeletePreference != nil {
		return m.MockDeletePreference(userID, key)
	}
	return nil
}
