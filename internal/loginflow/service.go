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
	"errors"
	"net/http"

	"github.com/asgardeo/flowcomposer/internal/gateway"
	"github.com/asgardeo/flowcomposer/internal/loginflow/constants"
	"github.com/asgardeo/flowcomposer/internal/loginflow/graph"
	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
	"github.com/asgardeo/flowcomposer/internal/loginflow/script"
	"github.com/asgardeo/flowcomposer/internal/loginflow/store"
	"github.com/asgardeo/flowcomposer/internal/loginflow/validator"
	"github.com/asgardeo/flowcomposer/internal/preference"
	prefmodel "github.com/asgardeo/flowcomposer/internal/preference/model"
	"github.com/asgardeo/flowcomposer/internal/system/config"
	"github.com/asgardeo/flowcomposer/internal/system/error/serviceerror"
	"github.com/asgardeo/flowcomposer/internal/system/log"
	sysutils "github.com/asgardeo/flowcomposer/internal/system/utils"
)

const loggerComponentName = "LoginFlowService"

// LoginFlowServiceInterface defines the service for composing login flows
// through server-side edit sessions.
type LoginFlowServiceInterface interface {
	StartSession(request model.StartSessionRequest) (*model.EditSession, *serviceerror.ServiceError)
	GetSession(sessionID string) (*model.EditSession, *serviceerror.ServiceError)
	DeleteSession(sessionID string) *serviceerror.ServiceError
	UpdateSequence(sessionID string, sequence *model.AuthenticationSequence) (
		*model.EditSession, *serviceerror.ServiceError)
	UpdateScript(sessionID, newScript string) (*model.EditSession, *serviceerror.ServiceError)
	AddStep(sessionID string) (*model.EditSession, *serviceerror.ServiceError)
	RemoveStep(sessionID string, stepID int) (*model.EditSession, *serviceerror.ServiceError)
	AddOption(sessionID string, stepID int, option model.AuthenticatorOption) (
		*model.EditSession, *serviceerror.ServiceError)
	RemoveOption(sessionID string, stepID int, authenticator string) (
		*model.EditSession, *serviceerror.ServiceError)
	GetGraph(sessionID string) (*graph.Graph, *serviceerror.ServiceError)
	UpdateGraph(sessionID string, flowGraph *graph.Graph) (
		*model.GraphUpdateResult, *serviceerror.ServiceError)
	RequestModeSwitch(sessionID string, targetMode constants.EditorMode) (
		*model.ModeSwitchResult, *serviceerror.ServiceError)
	ConfirmModeSwitch(sessionID string) (*model.ModeSwitchResult, *serviceerror.ServiceError)
	CancelModeSwitch(sessionID string) (*model.ModeSwitchResult, *serviceerror.ServiceError)
	SubmitSequence(sessionID string, request model.SubmitRequest) (
		*model.SubmitResult, *serviceerror.ServiceError)
}

// loginFlowService is the default implementation of LoginFlowServiceInterface.
type loginFlowService struct {
	sessionStore  store.SessionStoreInterface
	gatewayClient gateway.GatewayClientInterface
	prefService   preference.PreferenceServiceInterface
}

func newLoginFlowService(sessionStore store.SessionStoreInterface,
	gatewayClient gateway.GatewayClientInterface,
	prefService preference.PreferenceServiceInterface) LoginFlowServiceInterface {
	return &loginFlowService{
		sessionStore:  sessionStore,
		gatewayClient: gatewayClient,
		prefService:   prefService,
	}
}

// StartSession opens an edit session for the application's login flow. The
// working sequence is seeded from the application; applications without a
// customized flow start from the default sequence. The initial editor mode
// follows the user's remembered preference when one exists and the
// corresponding editor is enabled; otherwise writable sessions open in the
// visual editor.
func (ls *loginFlowService) StartSession(request model.StartSessionRequest) (
	*model.EditSession, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.ApplicationID == "" || request.UserID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	app, err := ls.gatewayClient.GetApplication(request.ApplicationID)
	if err != nil {
		return nil, ls.translateGatewayError(logger, err)
	}

	session := &model.EditSession{
		ID:                  sysutils.GenerateUUID(),
		ApplicationID:       app.ID,
		ApplicationName:     app.Name,
		UserID:              request.UserID,
		OrgType:             request.OrgType,
		ReadOnly:            request.ReadOnly,
		IsSystemApplication: ls.gatewayClient.IsSystemApplication(app.Name),
		Sequence:            seedSequence(app),
	}

	mode := ls.resolveInitialMode(request.UserID, request.ReadOnly)
	session.Mode = mode
	session.State = stateForMode(mode)

	ls.sessionStore.AddSession(session)
	logger.Debug("Edit session started", log.String(log.LoggerKeySessionID, session.ID),
		log.String(log.LoggerKeyApplicationID, session.ApplicationID))

	return session, nil
}

// GetSession retrieves an edit session.
func (ls *loginFlowService) GetSession(sessionID string) (
	*model.EditSession, *serviceerror.ServiceError) {
	exists, session := ls.sessionStore.GetSession(sessionID)
	if !exists {
		return nil, &constants.ErrorSessionNotFound
	}
	return session, nil
}

// DeleteSession discards an edit session and any unsubmitted work in it.
func (ls *loginFlowService) DeleteSession(sessionID string) *serviceerror.ServiceError {
	exists, _ := ls.sessionStore.GetSession(sessionID)
	if !exists {
		return &constants.ErrorSessionNotFound
	}
	ls.sessionStore.ClearSession(sessionID)
	return nil
}

// UpdateSequence replaces the session's working sequence wholesale. Step IDs
// are renumbered, scripts that were never customized are regenerated for the
// new step count, and the sequence is marked user defined.
func (ls *loginFlowService) UpdateSequence(sessionID string, sequence *model.AuthenticationSequence) (
	*model.EditSession, *serviceerror.ServiceError) {
	session, svcErr := ls.getMutableSession(sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	if sequence == nil || len(sequence.Steps) == 0 {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	previousCount := session.Sequence.StepCount()
	incoming := sequence.Clone()
	incoming.ReplaceSteps(incoming.Steps)
	session.Sequence = incoming
	syncScript(session.Sequence, previousCount)
	session.Sequence.MarkUserDefined()
	ls.sessionStore.UpdateSession(session)

	return session, nil
}

// UpdateScript replaces the session's adaptive script. A script that differs
// from the generated default marks the sequence as user defined.
func (ls *loginFlowService) UpdateScript(sessionID, newScript string) (
	*model.EditSession, *serviceerror.ServiceError) {
	session, svcErr := ls.getMutableSession(sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	session.Sequence.SetScript(newScript)
	if !script.IsDefaultScript(newScript, session.Sequence.StepCount()) {
		session.Sequence.MarkUserDefined()
	}
	ls.sessionStore.UpdateSession(session)

	return session, nil
}

// AddStep appends an empty step to the session's sequence. Scripts that were
// never customized are regenerated for the new step count; customized scripts
// are left untouched.
func (ls *loginFlowService) AddStep(sessionID string) (
	*model.EditSession, *serviceerror.ServiceError) {
	session, svcErr := ls.getMutableSession(sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	previousCount := session.Sequence.StepCount()
	session.Sequence.AddStep()
	syncScript(session.Sequence, previousCount)
	session.Sequence.MarkUserDefined()
	ls.sessionStore.UpdateSession(session)

	return session, nil
}

// RemoveStep removes a step from the session's sequence and renumbers the
// remaining steps.
func (ls *loginFlowService) RemoveStep(sessionID string, stepID int) (
	*model.EditSession, *serviceerror.ServiceError) {
	session, svcErr := ls.getMutableSession(sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	previousCount := session.Sequence.StepCount()
	if previousCount <= 1 {
		return nil, &constants.ErrorCannotRemoveLastStep
	}
	if !session.Sequence.RemoveStep(stepID) {
		return nil, &constants.ErrorStepNotFound
	}
	syncScript(session.Sequence, previousCount)
	session.Sequence.MarkUserDefined()
	ls.sessionStore.UpdateSession(session)

	return session, nil
}

// AddOption adds an authenticator option to a step of the session's sequence.
func (ls *loginFlowService) AddOption(sessionID string, stepID int, option model.AuthenticatorOption) (
	*model.EditSession, *serviceerror.ServiceError) {
	session, svcErr := ls.getMutableSession(sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	step := session.Sequence.StepByID(stepID)
	if step == nil {
		return nil, &constants.ErrorStepNotFound
	}
	if !step.AddOption(option) {
		return nil, &constants.ErrorDuplicateOption
	}
	session.Sequence.MarkUserDefined()
	ls.sessionStore.UpdateSession(session)

	return session, nil
}

// RemoveOption removes an authenticator option from a step of the session's
// sequence.
func (ls *loginFlowService) RemoveOption(sessionID string, stepID int, authenticator string) (
	*model.EditSession, *serviceerror.ServiceError) {
	session, svcErr := ls.getMutableSession(sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	step := session.Sequence.StepByID(stepID)
	if step == nil {
		return nil, &constants.ErrorStepNotFound
	}
	if !step.RemoveOption(authenticator) {
		return nil, &constants.ErrorOptionNotFound
	}
	session.Sequence.MarkUserDefined()
	ls.sessionStore.UpdateSession(session)

	return session, nil
}

// GetGraph returns the node-graph view of the session's sequence.
func (ls *loginFlowService) GetGraph(sessionID string) (*graph.Graph, *serviceerror.ServiceError) {
	exists, session := ls.sessionStore.GetSession(sessionID)
	if !exists {
		return nil, &constants.ErrorSessionNotFound
	}
	return graph.BuildGraph(session.Sequence), nil
}

// UpdateGraph replaces the session's steps from a graph edited in the visual
// editor. The result reports whether branch information was discarded by the
// conversion.
func (ls *loginFlowService) UpdateGraph(sessionID string, flowGraph *graph.Graph) (
	*model.GraphUpdateResult, *serviceerror.ServiceError) {
	session, svcErr := ls.getMutableSession(sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	previousCount := session.Sequence.StepCount()
	steps, lossy := graph.Collapse(flowGraph)
	if len(steps) == 0 {
		return nil, &constants.ErrorInvalidRequestFormat
	}
	session.Sequence.ReplaceSteps(steps)
	syncScript(session.Sequence, previousCount)
	session.Sequence.MarkUserDefined()
	ls.sessionStore.UpdateSession(session)

	return &model.GraphUpdateResult{
		Sequence: session.Sequence,
		Lossy:    lossy,
	}, nil
}

// RequestModeSwitch moves the session into the switch-pending state. The
// active mode does not change until the switch is confirmed. Switching away
// from the visual editor warns that visual-only information will be
// discarded.
func (ls *loginFlowService) RequestModeSwitch(sessionID string, targetMode constants.EditorMode) (
	*model.ModeSwitchResult, *serviceerror.ServiceError) {
	exists, session := ls.sessionStore.GetSession(sessionID)
	if !exists {
		return nil, &constants.ErrorSessionNotFound
	}
	if session.State == constants.SessionStateSwitchPending {
		return nil, &constants.ErrorInvalidModeSwitch
	}
	if targetMode != constants.EditorModeClassic && targetMode != constants.EditorModeVisual {
		return nil, &constants.ErrorInvalidModeSwitch
	}
	if targetMode == session.Mode {
		return nil, &constants.ErrorInvalidModeSwitch
	}
	if !isModeEnabled(targetMode) {
		return nil, &constants.ErrorInvalidModeSwitch
	}

	session.State = constants.SessionStateSwitchPending
	session.PendingMode = targetMode
	ls.sessionStore.UpdateSession(session)

	result := &model.ModeSwitchResult{
		State:       session.State,
		Mode:        session.Mode,
		PendingMode: session.PendingMode,
	}
	if session.Mode == constants.EditorModeVisual {
		result.Warning = &model.Alert{
			Level:       constants.AlertLevelWarning,
			Message:     "Switching editors discards visual-only changes",
			Description: "Branching and layout added in the visual editor will be lost when the flow is rebuilt for the classic editor",
		}
	}

	return result, nil
}

// ConfirmModeSwitch applies a pending mode switch: the working sequence is
// rebuilt from the application's persisted flow and the chosen mode is stored
// as the user's editor preference.
func (ls *loginFlowService) ConfirmModeSwitch(sessionID string) (
	*model.ModeSwitchResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	exists, session := ls.sessionStore.GetSession(sessionID)
	if !exists {
		return nil, &constants.ErrorSessionNotFound
	}
	if session.State != constants.SessionStateSwitchPending {
		return nil, &constants.ErrorInvalidModeSwitch
	}

	app, err := ls.gatewayClient.GetApplication(session.ApplicationID)
	if err != nil {
		return nil, ls.translateGatewayError(logger, err)
	}

	session.Mode = session.PendingMode
	session.PendingMode = ""
	session.State = stateForMode(session.Mode)
	session.Sequence = seedSequence(app)
	ls.sessionStore.UpdateSession(session)

	if svcErr := ls.prefService.SetPreference(prefmodel.UserPreference{
		UserID: session.UserID,
		Key:    constants.PreferredEditorKey,
		Value:  string(session.Mode),
	}); svcErr != nil {
		// The switch itself succeeded; a failed preference write only means
		// the choice will not be remembered.
		logger.Warn("Failed to persist editor preference",
			log.String(log.LoggerKeyUserID, session.UserID),
			log.String("code", svcErr.Code))
	}

	return &model.ModeSwitchResult{
		State: session.State,
		Mode:  session.Mode,
	}, nil
}

// CancelModeSwitch abandons a pending mode switch and restores the prior
// mode. No preference is written.
func (ls *loginFlowService) CancelModeSwitch(sessionID string) (
	*model.ModeSwitchResult, *serviceerror.ServiceError) {
	exists, session := ls.sessionStore.GetSession(sessionID)
	if !exists {
		return nil, &constants.ErrorSessionNotFound
	}
	if session.State != constants.SessionStateSwitchPending {
		return nil, &constants.ErrorInvalidModeSwitch
	}

	session.PendingMode = ""
	session.State = stateForMode(session.Mode)
	ls.sessionStore.UpdateSession(session)

	return &model.ModeSwitchResult{
		State: session.State,
		Mode:  session.Mode,
	}, nil
}

// SubmitSequence persists the session's sequence to the identity server.
// The outgoing sequence is validated before the update is issued; a sequence
// that fails validation is never sent. Reverting persists the default
// sequence instead of the session's working copy.
func (ls *loginFlowService) SubmitSequence(sessionID string, request model.SubmitRequest) (
	*model.SubmitResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	session, svcErr := ls.getMutableSession(sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	var outgoing *model.AuthenticationSequence
	if request.IsRevertFlow {
		outgoing = model.DefaultSequence()
	} else {
		outgoing = session.Sequence.Clone()
		outgoing.MarkUserDefined()
		conditionalAuthEnabled := config.GetComposerRuntime().Config.Flow.ConditionalAuthEnabled
		if !conditionalAuthEnabled ||
			script.IsDefaultScript(outgoing.Script, session.Sequence.StepCount()) {
			outgoing.SetScript(script.GenerateScript(outgoing.StepCount()))
		}
	}

	alerts := []model.Alert{}

	// Sub-organizations do not support conditional authentication scripts.
	if session.OrgType == constants.OrgTypeSubOrganization && outgoing.Script != "" {
		outgoing.SetScript("")
		alerts = append(alerts, model.Alert{
			Level:       constants.AlertLevelWarning,
			Message:     "Conditional authentication script removed",
			Description: "Conditional authentication is not supported for sub-organizations",
		})
	}

	// The resolved script applies to the session immediately; a failed
	// submission leaves this optimistic update in place for resubmission.
	if !request.IsRevertFlow {
		session.Sequence.SetScript(outgoing.Script)
		ls.sessionStore.UpdateSession(session)
	}

	if validationErr := validator.ValidateSteps(outgoing.Steps); validationErr != nil {
		return nil, validationErr
	}

	updateRequest := gateway.SequenceUpdateRequest{
		AuthenticationSequence: outgoing,
	}
	if session.IsSystemApplication {
		updateRequest.Name = session.ApplicationName
	}

	if err := ls.gatewayClient.UpdateAuthenticationSequence(session.ApplicationID, updateRequest); err != nil {
		ls.refreshApplicationMetadata(logger, session)
		return nil, ls.translateGatewayError(logger, err)
	}

	alerts = append(alerts, model.Alert{
		Level:   constants.AlertLevelSuccess,
		Message: "Login flow updated successfully",
	})

	// Refetch so the session reflects what the identity server actually
	// stored.
	app, err := ls.gatewayClient.GetApplication(session.ApplicationID)
	if err != nil {
		logger.Warn("Failed to refetch application after update",
			log.String(log.LoggerKeyApplicationID, session.ApplicationID), log.Error(err))
		session.Sequence = outgoing
	} else {
		session.Sequence = seedSequence(app)
	}
	ls.sessionStore.UpdateSession(session)

	return &model.SubmitResult{
		Persisted: true,
		Sequence:  session.Sequence,
		Alerts:    alerts,
	}, nil
}

// refreshApplicationMetadata re-reads the application's name and system flag
// after a failed update so the session does not keep stale server state. The
// working sequence is left untouched.
func (ls *loginFlowService) refreshApplicationMetadata(logger *log.Logger, session *model.EditSession) {
	app, err := ls.gatewayClient.GetApplication(session.ApplicationID)
	if err != nil {
		logger.Warn("Failed to refresh application metadata",
			log.String(log.LoggerKeyApplicationID, session.ApplicationID), log.Error(err))
		return
	}
	session.ApplicationName = app.Name
	session.IsSystemApplication = ls.gatewayClient.IsSystemApplication(app.Name)
	ls.sessionStore.UpdateSession(session)
}

// getMutableSession retrieves a session that is allowed to be modified.
func (ls *loginFlowService) getMutableSession(sessionID string) (
	*model.EditSession, *serviceerror.ServiceError) {
	exists, session := ls.sessionStore.GetSession(sessionID)
	if !exists {
		return nil, &constants.ErrorSessionNotFound
	}
	if session.ReadOnly {
		return nil, &constants.ErrorSessionReadOnly
	}
	if session.State == constants.SessionStateSwitchPending {
		return nil, &constants.ErrorInvalidModeSwitch
	}
	return session, nil
}

// resolveInitialMode returns the editor mode to open a new session in. When
// only one editor is enabled that editor wins; otherwise the user's stored
// preference applies, and absent a preference writable sessions open in the
// visual editor.
func (ls *loginFlowService) resolveInitialMode(userID string, readOnly bool) constants.EditorMode {
	editors := config.GetComposerRuntime().Config.Flow.Editors
	if editors.ClassicEnabled && !editors.VisualEnabled {
		return constants.EditorModeClassic
	}
	if editors.VisualEnabled && !editors.ClassicEnabled {
		return constants.EditorModeVisual
	}

	pref, svcErr := ls.prefService.GetPreference(userID, constants.PreferredEditorKey)
	if svcErr == nil && pref != nil {
		mode := constants.EditorMode(pref.Value)
		if isModeEnabled(mode) {
			return mode
		}
	}

	if !readOnly {
		return constants.EditorModeVisual
	}
	return constants.EditorModeClassic
}

// translateGatewayError maps identity server failures onto service errors.
func (ls *loginFlowService) translateGatewayError(logger *log.Logger, err error) *serviceerror.ServiceError {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsScriptRejected() {
			return &constants.ErrorScriptRejected
		}
		if apiErr.StatusCode == http.StatusNotFound {
			return &constants.ErrorApplicationNotFound
		}
	}
	logger.Error("Identity server request failed", log.Error(err))
	return &constants.ErrorGatewayUnavailable
}

// syncScript regenerates the sequence's script after a structural change when
// the script was never customized. Custom scripts are preserved as-is.
func syncScript(sequence *model.AuthenticationSequence, previousStepCount int) {
	if script.IsDefaultScript(sequence.Script, previousStepCount) {
		sequence.SetScript(script.GenerateScript(sequence.StepCount()))
	}
}

// seedSequence builds the session's working sequence from the application.
func seedSequence(app *gateway.Application) *model.AuthenticationSequence {
	if app.AuthenticationSequence == nil {
		return model.DefaultSequence()
	}
	seq := app.AuthenticationSequence.Clone()
	if seq.StepCount() == 0 {
		return model.DefaultSequence()
	}
	return seq
}

func stateForMode(mode constants.EditorMode) constants.SessionState {
	if mode == constants.EditorModeVisual {
		return constants.SessionStateVisual
	}
	return constants.SessionStateClassic
}

func isModeEnabled(mode constants.EditorMode) bool {
	editors := config.GetComposerRuntime().Config.Flow.Editors
	switch mode {
	case constants.EditorModeClassic:
		return editors.ClassicEnabled
	case constants.EditorModeVisual:
		return editors.VisualEnabled
	default:
		return false
	}
}
