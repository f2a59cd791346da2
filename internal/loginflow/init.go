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

// Package loginflow provides functionality for composing application login
// flows through server-side edit sessions.
package loginflow

import (
	"net/http"

	"github.com/asgardeo/flowcomposer/internal/gateway"
	"github.com/asgardeo/flowcomposer/internal/loginflow/store"
	"github.com/asgardeo/flowcomposer/internal/preference"
	"github.com/asgardeo/flowcomposer/internal/system/middleware"
)

// Initialize initializes the login flow service and registers its routes.
func Initialize(mux *http.ServeMux, prefService preference.PreferenceServiceInterface) LoginFlowServiceInterface {
	flowService := newLoginFlowService(store.GetSessionStore(), gateway.GetGatewayClient(), prefService)
	flowHandler := newLoginFlowHandler(flowService)
	registerRoutes(mux, flowHandler)
	return flowService
}

func registerRoutes(mux *http.ServeMux, flowHandler *loginFlowHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /flow-sessions",
		flowHandler.HandleSessionPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flow-sessions",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /flow-sessions/{id}",
		flowHandler.HandleSessionGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /flow-sessions/{id}",
		flowHandler.HandleSessionDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("GET /flow-sessions/{id}/sequence",
		flowHandler.HandleSequenceGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /flow-sessions/{id}/sequence",
		flowHandler.HandleSequencePutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /flow-sessions/{id}/script",
		flowHandler.HandleScriptPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow-sessions/{id}/steps",
		flowHandler.HandleStepPostRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /flow-sessions/{id}/steps/{stepId}",
		flowHandler.HandleStepDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow-sessions/{id}/steps/{stepId}/options",
		flowHandler.HandleOptionPostRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /flow-sessions/{id}/steps/{stepId}/options/{authenticator}",
		flowHandler.HandleOptionDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("GET /flow-sessions/{id}/graph",
		flowHandler.HandleGraphGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /flow-sessions/{id}/graph",
		flowHandler.HandleGraphPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow-sessions/{id}/mode",
		flowHandler.HandleModePostRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow-sessions/{id}/mode/confirm",
		flowHandler.HandleModeConfirmRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow-sessions/{id}/mode/cancel",
		flowHandler.HandleModeCancelRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow-sessions/{id}/submit",
		flowHandler.HandleSubmitPostRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flow-sessions/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
