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

// Package preferencemock provides mock implementations of the preference
// service interfaces for testing.
package preferencemock

import (
	"github.com/asgardeo/flowcomposer/internal/preference/model"
	"github.com/asgardeo/flowcomposer/internal/system/error/serviceerror"
)

// MockPreferenceService is a mock implementation of the PreferenceServiceInterface.
type MockPreferenceService struct {
	// MockGetPreference defines the behavior for the GetPreference method.
	MockGetPreference func(userID, key string) (*model.UserPreference, *serviceerror.ServiceError)

	// MockSetPreference defines the behavior for the SetPreference method.
	MockSetPreference func(preference model.UserPreference) *serviceerror.ServiceError

	// MockDeletePreference defines the behavior for the DeletePreference method.
	MockDeletePreference func(userID, key string) *serviceerror.ServiceError

	// SetPreferenceCalls tracks the arguments passed to SetPreference.
	SetPreferenceCalls []model.UserPreference
}

// GetPreference mocks the GetPreference method of the PreferenceServiceInterface.
func (m *MockPreferenceService) GetPreference(userID, key string) (
	*model.UserPreference, *serviceerror.ServiceError) {
	if m.MockGetPreference != nil {
		return m.MockGetPreference(userID, key)
	}
	return nil, &serviceerror.ServiceError{Code: "PRF-1002", Type: serviceerror.ClientErrorType}
}

// SetPreference mocks the SetPreference method of the PreferenceServiceInterface.
func (m *MockPreferenceService) SetPreference(preference model.UserPreference) *serviceerror.ServiceError {
	m.SetPreferenceCalls = append(m.SetPreferenceCalls, preference)

	if m.MockSetPreference != nil {
		return m.MockSetPreference(preference)
	}
	return nil
}

// DeletePreference mocks the DeletePreference method of the PreferenceServiceInterface.
func (m *MockPreferenceService) DeletePreference(userID, key string) *serviceerror.ServiceError {
	if m.MockDeletePreference != nil {
		return m.MockDeletePreference(userID, key)
	}
	return nil
}
