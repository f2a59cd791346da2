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
	"encoding/json"
	"net/http"

	"github.com/asgardeo/flowcomposer/internal/preference/constants"
	"github.com/asgardeo/flowcomposer/internal/preference/model"
	serverconst "github.com/asgardeo/flowcomposer/internal/system/constants"
	"github.com/asgardeo/flowcomposer/internal/system/error/apierror"
	"github.com/asgardeo/flowcomposer/internal/system/error/serviceerror"
	"github.com/asgardeo/flowcomposer/internal/system/log"
	sysutils "github.com/asgardeo/flowcomposer/internal/system/utils"
)

// preferenceHandler defines the handler for managing user preference API requests.
type preferenceHandler struct {
	service PreferenceServiceInterface
}

func newPreferenceHandler(service PreferenceServiceInterface) *preferenceHandler {
	return &preferenceHandler{
		service: service,
	}
}

// preferenceValueRequest is the body of a preference update request.
type preferenceValueRequest struct {
	Value string `json:"value"`
}

// HandlePreferenceGetRequest handles retrieval of a stored preference.
func (ph *preferenceHandler) HandlePreferenceGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "PreferenceHandler"))

	userID := r.PathValue("userId")
	key := r.PathValue("key")

	pref, svcErr := ph.service.GetPreference(userID, key)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(pref); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandlePreferencePutRequest handles storing a preference value.
func (ph *preferenceHandler) HandlePreferencePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "PreferenceHandler"))

	userID := r.PathValue("userId")
	key := r.PathValue("key")

	valueRequest, err := sysutils.DecodeJSONBody[preferenceValueRequest](r)
	if err != nil {
		ph.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	pref := model.UserPreference{
		UserID: userID,
		Key:    key,
		Value:  valueRequest.Value,
	}
	if svcErr := ph.service.SetPreference(pref); svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(pref); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandlePreferenceDeleteRequest handles removing a stored preference.
func (ph *preferenceHandler) HandlePreferenceDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "PreferenceHandler"))

	userID := r.PathValue("userId")
	key := r.PathValue("key")

	if svcErr := ph.service.DeletePreference(userID, key); svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleError handles service errors and returns appropriate HTTP responses.
func (ph *preferenceHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		if svcErr.Code == constants.ErrorPreferenceNotFound.Code {
			statusCode = http.StatusNotFound
		} else {
			statusCode = http.StatusBadRequest
		}
	}
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
