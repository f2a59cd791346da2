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

package model

import "github.com/asgardeo/flowcomposer/internal/loginflow/constants"

// StartSessionRequest is the request to open an edit session for an
// application's login flow.
type StartSessionRequest struct {
	ApplicationID string `json:"applicationId"`
	UserID        string `json:"userId"`
	OrgType       string `json:"orgType,omitempty"`
	ReadOnly      bool   `json:"readOnly,omitempty"`
}

// ScriptUpdateRequest is the request to replace the session's adaptive script.
type ScriptUpdateRequest struct {
	Script string `json:"script"`
}

// OptionRequest is the request to add an authenticator option to a step.
type OptionRequest struct {
	Authenticator string `json:"authenticator"`
	IdP           string `json:"idp,omitempty"`
}

// ModeSwitchRequest is the request to change the session's editor mode.
type ModeSwitchRequest struct {
	Mode constants.EditorMode `json:"mode"`
}

// ModeSwitchResult reports the outcome of a mode switch request. The switch
// only takes effect once confirmed; the warning, when present, tells the
// administrator what the switch will discard.
type ModeSwitchResult struct {
	State       constants.SessionState `json:"state"`
	Mode        constants.EditorMode   `json:"mode"`
	PendingMode constants.EditorMode   `json:"pendingMode,omitempty"`
	Warning     *Alert                 `json:"warning,omitempty"`
}

// SubmitRequest is the request to persist the session's sequence.
type SubmitRequest struct {
	IsRevertFlow bool `json:"isRevertFlow,omitempty"`
}

// GraphUpdateResult reports the outcome of replacing the session's steps from
// a graph, including whether branch information was discarded.
type GraphUpdateResult struct {
	Sequence *AuthenticationSequence `json:"sequence"`
	Lossy    bool                    `json:"lossy"`
}
