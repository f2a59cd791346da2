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

package loginflow

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/asgardeo/flowcomposer/internal/loginflow/constants"
	"github.com/asgardeo/flowcomposer/internal/loginflow/graph"
	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
	serverconst "github.com/asgardeo/flowcomposer/internal/system/constants"
	"github.com/asgardeo/flowcomposer/internal/system/error/apierror"
	"github.com/asgardeo/flowcomposer/internal/system/error/serviceerror"
	"github.com/asgardeo/flowcomposer/internal/system/log"
	sysutils "github.com/asgardeo/flowcomposer/internal/system/utils"
)

// loginFlowHandler defines the handler for managing login flow edit session
// API requests.
type loginFlowHandler struct {
	service LoginFlowServiceInterface
}

func newLoginFlowHandler(service LoginFlowServiceInterface) *loginFlowHandler {
	return &loginFlowHandler{
		service: service,
	}
}

// HandleSessionPostRequest handles creation of a new edit session.
func (lh *loginFlowHandler) HandleSessionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	request, err := sysutils.DecodeJSONBody[model.StartSessionRequest](r)
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	session, svcErr := lh.service.StartSession(*request)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusCreated, session)
}

// HandleSessionGetRequest handles retrieval of an edit session.
func (lh *loginFlowHandler) HandleSessionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	session, svcErr := lh.service.GetSession(r.PathValue("id"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, session)
}

// HandleSessionDeleteRequest handles discarding an edit session.
func (lh *loginFlowHandler) HandleSessionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	if svcErr := lh.service.DeleteSession(r.PathValue("id")); svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleSequenceGetRequest handles retrieval of the session's working
// sequence.
func (lh *loginFlowHandler) HandleSequenceGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	session, svcErr := lh.service.GetSession(r.PathValue("id"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, session.Sequence)
}

// HandleSequencePutRequest handles replacing the session's working sequence
// wholesale.
func (lh *loginFlowHandler) HandleSequencePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	sequence, err := sysutils.DecodeJSONBody[model.AuthenticationSequence](r)
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	session, svcErr := lh.service.UpdateSequence(r.PathValue("id"), sequence)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, session.Sequence)
}

// HandleScriptPutRequest handles replacing the session's adaptive script.
func (lh *loginFlowHandler) HandleScriptPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	request, err := sysutils.DecodeJSONBody[model.ScriptUpdateRequest](r)
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	session, svcErr := lh.service.UpdateScript(r.PathValue("id"), request.Script)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, session.Sequence)
}

// HandleStepPostRequest handles appending a step to the session's sequence.
func (lh *loginFlowHandler) HandleStepPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	session, svcErr := lh.service.AddStep(r.PathValue("id"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, session.Sequence)
}

// HandleStepDeleteRequest handles removing a step from the session's
// sequence.
func (lh *loginFlowHandler) HandleStepDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	stepID, err := strconv.Atoi(r.PathValue("stepId"))
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	session, svcErr := lh.service.RemoveStep(r.PathValue("id"), stepID)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, session.Sequence)
}

// HandleOptionPostRequest handles adding an authenticator option to a step.
func (lh *loginFlowHandler) HandleOptionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	stepID, err := strconv.Atoi(r.PathValue("stepId"))
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	request, err := sysutils.DecodeJSONBody[model.OptionRequest](r)
	if err != nil || request.Authenticator == "" {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	option := model.AuthenticatorOption{
		Authenticator: request.Authenticator,
		IdP:           request.IdP,
	}
	session, svcErr := lh.service.AddOption(r.PathValue("id"), stepID, option)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, session.Sequence)
}

// HandleOptionDeleteRequest handles removing an authenticator option from a
// step.
func (lh *loginFlowHandler) HandleOptionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	stepID, err := strconv.Atoi(r.PathValue("stepId"))
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	session, svcErr := lh.service.RemoveOption(r.PathValue("id"), stepID, r.PathValue("authenticator"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, session.Sequence)
}

// HandleGraphGetRequest handles retrieval of the node-graph view of the
// session's sequence.
func (lh *loginFlowHandler) HandleGraphGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	flowGraph, svcErr := lh.service.GetGraph(r.PathValue("id"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, flowGraph)
}

// HandleGraphPutRequest handles replacing the session's steps from an edited
// graph.
func (lh *loginFlowHandler) HandleGraphPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	flowGraph, err := sysutils.DecodeJSONBody[graph.Graph](r)
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	result, svcErr := lh.service.UpdateGraph(r.PathValue("id"), flowGraph)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, result)
}

// HandleModePostRequest handles requesting an editor mode switch.
func (lh *loginFlowHandler) HandleModePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	request, err := sysutils.DecodeJSONBody[model.ModeSwitchRequest](r)
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	result, svcErr := lh.service.RequestModeSwitch(r.PathValue("id"), request.Mode)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, result)
}

// HandleModeConfirmRequest handles confirming a pending mode switch.
func (lh *loginFlowHandler) HandleModeConfirmRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	result, svcErr := lh.service.ConfirmModeSwitch(r.PathValue("id"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, result)
}

// HandleModeCancelRequest handles cancelling a pending mode switch.
func (lh *loginFlowHandler) HandleModeCancelRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	result, svcErr := lh.service.CancelModeSwitch(r.PathValue("id"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, result)
}

// HandleSubmitPostRequest handles persisting the session's sequence to the
// identity server.
func (lh *loginFlowHandler) HandleSubmitPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginFlowHandler"))

	request, err := sysutils.DecodeJSONBody[model.SubmitRequest](r)
	if err != nil {
		lh.handleError(w, logger, &constants.ErrorInvalidRequestFormat)
		return
	}

	result, svcErr := lh.service.SubmitSequence(r.PathValue("id"), *request)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	lh.writeJSONResponse(w, logger, http.StatusOK, result)
}

func (lh *loginFlowHandler) writeJSONResponse(w http.ResponseWriter, logger *log.Logger,
	statusCode int, payload any) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// handleError handles service errors and returns appropriate HTTP responses.
func (lh *loginFlowHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case constants.ErrorSessionNotFound.Code, constants.ErrorStepNotFound.Code,
			constants.ErrorOptionNotFound.Code, constants.ErrorApplicationNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorDuplicateOption.Code:
			statusCode = http.StatusConflict
		case constants.ErrorSessionReadOnly.Code:
			statusCode = http.StatusForbidden
		default:
			statusCode = http.StatusBadRequest
		}
	}
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
