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

package preference

import (
	"errors"
	"slices"

	flowconst "github.com/asgardeo/flowcomposer/internal/loginflow/constants"
	"github.com/asgardeo/flowcomposer/internal/preference/constants"
	"github.com/asgardeo/flowcomposer/internal/preference/model"
	"github.com/asgardeo/flowcomposer/internal/preference/store"
	"github.com/asgardeo/flowcomposer/internal/system/error/serviceerror"
	"github.com/asgardeo/flowcomposer/internal/system/log"
)

const loggerComponentName = "PreferenceService"

// allowedValues maps each recognized preference key to its permitted values.
// A key mapped to nil accepts any value.
var allowedValues = map[string][]string{
	flowconst.PreferredEditorKey: {
		string(flowconst.EditorModeClassic),
		string(flowconst.EditorModeVisual),
	},
}

// PreferenceServiceInterface defines the service for managing user preferences.
type PreferenceServiceInterface interface {
	GetPreference(userID, key string) (*model.UserPreference, *serviceerror.ServiceError)
	SetPreference(preference model.UserPreference) *serviceerror.ServiceError
	DeletePreference(userID, key string) *serviceerror.ServiceError
}

// preferenceService is the default implementation of PreferenceServiceInterface.
type preferenceService struct {
	store store.PreferenceStoreInterface
}

func newPreferenceService(prefStore store.PreferenceStoreInterface) PreferenceServiceInterface {
	return &preferenceService{
		store: prefStore,
	}
}

// GetPreference retrieves the stored preference for the user and key.
func (ps *preferenceService) GetPreference(userID, key string) (
	*model.UserPreference, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if userID == "" {
		return nil, &constants.ErrorMissingUserID
	}
	if _, recognized := allowedValues[key]; !recognized {
		return nil, &constants.ErrorInvalidPreferenceKey
	}

	value, err := ps.store.GetPreference(userID, key)
	if err != nil {
		if errors.Is(err, store.ErrPreferenceNotFound) {
			return nil, &constants.ErrorPreferenceNotFound
		}
		logger.Error("Failed to retrieve preference", log.String(log.LoggerKeyUserID, userID),
			log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.UserPreference{
		UserID: userID,
		Key:    key,
		Value:  value,
	}, nil
}

// SetPreference validates and stores the preference.
func (ps *preferenceService) SetPreference(preference model.UserPreference) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if preference.UserID == "" {
		return &constants.ErrorMissingUserID
	}

	allowed, recognized := allowedValues[preference.Key]
	if !recognized {
		return &constants.ErrorInvalidPreferenceKey
	}
	if allowed != nil && !slices.Contains(allowed, preference.Value) {
		return &constants.ErrorInvalidPreferenceValue
	}

	if err := ps.store.UpsertPreference(preference); err != nil {
		logger.Error("Failed to store preference", log.String(log.LoggerKeyUserID, preference.UserID),
			log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}

// DeletePreference removes the stored preference for the user and key.
func (ps *preferenceService) DeletePreference(userID, key string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if userID == "" {
		return &constants.ErrorMissingUserID
	}
	if _, recognized := allowedValues[key]; !recognized {
		return &constants.ErrorInvalidPreferenceKey
	}

	if err := ps.store.DeletePreference(userID, key); err != nil {
		logger.Error("Failed to delete preference", log.String(log.LoggerKeyUserID, userID),
			log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}
