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

// Package constants defines constants used by the login flow composer.
package constants

// Authenticator names recognized by the flow validator.
const (
	// AuthenticatorIdentifierFirst is the identifier-first authenticator. It
	// collects the username without authenticating, so it cannot stand alone
	// and cannot be combined with other options in the same step.
	AuthenticatorIdentifierFirst = "IdentifierExecutor"
	// AuthenticatorBasic is the username and password authenticator used in
	// the default sequence.
	AuthenticatorBasic = "BasicAuthenticator"
)

// LocalIdPName is the identity provider name for local authenticators.
const LocalIdPName = "LOCAL"

// EditorMode identifies which editor representation an edit session is using.
type EditorMode string

const (
	// EditorModeClassic is the step-and-script oriented editor.
	EditorModeClassic EditorMode = "classic"
	// EditorModeVisual is the graph oriented editor.
	EditorModeVisual EditorMode = "visual"
)

// SessionState tracks the mode-switch state machine of an edit session.
type SessionState string

const (
	// SessionStateClassic means the session is editing in classic mode.
	SessionStateClassic SessionState = "CLASSIC"
	// SessionStateVisual means the session is editing in visual mode.
	SessionStateVisual SessionState = "VISUAL"
	// SessionStateSwitchPending means a mode switch was requested and awaits
	// confirmation or cancellation.
	SessionStateSwitchPending SessionState = "SWITCH_PENDING"
)

// OrgTypeSubOrganization marks organizations for which adaptive scripts are
// not supported.
const OrgTypeSubOrganization = "SUBORGANIZATION"

// PreferredEditorKey is the preference key under which a user's editor choice
// is persisted.
const PreferredEditorKey = "loginFlow.preferredEditor"

// AlertLevel classifies the outcome messages produced by a sequence submit.
type AlertLevel string

const (
	// AlertLevelSuccess indicates the operation completed as requested.
	AlertLevelSuccess AlertLevel = "SUCCESS"
	// AlertLevelWarning indicates the operation completed with a caveat.
	AlertLevelWarning AlertLevel = "WARNING"
	// AlertLevelError indicates the operation failed.
	AlertLevelError AlertLevel = "ERROR"
)
