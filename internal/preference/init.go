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

// Package preference provides functionality for managing user preferences.
package preference

import (
	"net/http"

	"github.com/asgardeo/flowcomposer/internal/preference/store"
	"github.com/asgardeo/flowcomposer/internal/system/middleware"
)

// Initialize initializes the preference service and registers its routes.
func Initialize(mux *http.ServeMux) PreferenceServiceInterface {
	prefStore := store.NewCachedBackedPreferenceStore()
	prefService := newPreferenceService(prefStore)
	prefHandler := newPreferenceHandler(prefService)
	registerRoutes(mux, prefHandler)
	return prefService
}

func registerRoutes(mux *http.ServeMux, prefHandler *preferenceHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /users/{userId}/preferences/{key}",
		prefHandler.HandlePreferenceGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("PUT /users/{userId}/preferences/{key}",
		prefHandler.HandlePreferencePutRequest, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /users/{userId}/preferences/{key}",
		prefHandler.HandlePreferenceDeleteRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /users/{userId}/preferences/{key}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
