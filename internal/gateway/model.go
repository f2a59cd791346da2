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

package gateway

import (
	"fmt"

	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
)

// Application is the subset of the identity server's application resource the
// composer needs.
type Application struct {
	ID                     string                        `json:"id"`
	Name                   string                        `json:"name"`
	AuthenticationSequence *model.AuthenticationSequence `json:"authenticationSequence,omitempty"`
}

// SequenceUpdateRequest is the payload sent to the identity server to update
// an application's authentication sequence. The application name is included
// only for system applications, which the identity server disambiguates by
// name.
type SequenceUpdateRequest struct {
	AuthenticationSequence *model.AuthenticationSequence `json:"authenticationSequence"`
	Name                   string                        `json:"name,omitempty"`
}

// APIError is an error response returned by the identity server.
type APIError struct {
	StatusCode  int    `json:"statusCode"`
	Code        string `json:"code"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("identity server returned status %d: %s %s", e.StatusCode, e.Code, e.Description)
}

// IsScriptRejected reports whether the identity server rejected the adaptive
// script for containing disallowed programming constructs.
func (e *APIError) IsScriptRejected() bool {
	return e.Code == ErrorCodeInvalidScript
}
