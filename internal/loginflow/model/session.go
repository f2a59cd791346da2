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

// EditSession is the server-side state of one administrator editing the
// login flow of one application.
type EditSession struct {
	ID                  string                  `json:"id"`
	ApplicationID       string                  `json:"applicationId"`
	ApplicationName     string                  `json:"applicationName"`
	UserID              string                  `json:"userId"`
	OrgType             string                  `json:"orgType"`
	ReadOnly            bool                    `json:"readOnly"`
	IsSystemApplication bool                    `json:"isSystemApplication"`
	Mode                constants.EditorMode    `json:"mode"`
	State               constants.SessionState  `json:"state"`
	PendingMode         constants.EditorMode    `json:"pendingMode,omitempty"`
	Sequence            *AuthenticationSequence `json:"sequence"`
}

// Clone returns a deep copy of the session. The working sequence is copied
// so callers never share mutable state with the session store.
func (s *EditSession) Clone() *EditSession {
	cloned := *s
	if s.Sequence != nil {
		cloned.Sequence = s.Sequence.Clone()
	}
	return &cloned
}

// Alert is an outcome message produced by a sequence submit, surfaced to the
// administrator by the caller.
type Alert struct {
	Level       constants.AlertLevel `json:"level"`
	Message     string               `json:"message"`
	Description string               `json:"description,omitempty"`
}

// SubmitResult is the outcome of submitting a session's sequence for
// persistence.
type SubmitResult struct {
	Persisted bool                    `json:"persisted"`
	Sequence  *AuthenticationSequence `json:"sequence,omitempty"`
	Alerts    []Alert                 `json:"alerts"`
}
