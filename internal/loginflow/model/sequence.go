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

// Package model defines the data structures for authentication sequence composition.
package model

// SequenceType defines the type of an authentication sequence.
type SequenceType string

const (
	// SequenceTypeDefault denotes a sequence that was never customized beyond the standard template.
	SequenceTypeDefault SequenceType = "DEFAULT"
	// SequenceTypeUserDefined denotes a sequence customized by an administrator.
	SequenceTypeUserDefined SequenceType = "USER_DEFINED"
)

// AuthenticatorOption represents a single authenticator choice within an authentication step.
type AuthenticatorOption struct {
	Authenticator string `json:"authenticator"`
	IdP           string `json:"idp,omitempty"`
}

// AuthenticationStep represents one stage of a login flow. Step order is
// semantically significant; option order within a step is display-only.
type AuthenticationStep struct {
	ID      int                   `json:"id"`
	Options []AuthenticatorOption `json:"options"`
}

// AuthenticationSequence is the canonical representation of an authentication flow.
type AuthenticationSequence struct {
	Type                      SequenceType         `json:"type"`
	Steps                     []AuthenticationStep `json:"steps"`
	Script                    string               `json:"script,omitempty"`
	SubjectStepID             int                  `json:"subjectStepId,omitempty"`
	AttributeStepID           int                  `json:"attributeStepId,omitempty"`
	RequestPathAuthenticators []string             `json:"requestPathAuthenticators,omitempty"`
}

// Clone returns a deep copy of the sequence. Options are owned by their step,
// never shared between copies.
func (s *AuthenticationSequence) Clone() *AuthenticationSequence {
	cloned := &AuthenticationSequence{
		Type:            s.Type,
		Script:          s.Script,
		SubjectStepID:   s.SubjectStepID,
		AttributeStepID: s.AttributeStepID,
	}

	if s.Steps != nil {
		cloned.Steps = make([]AuthenticationStep, len(s.Steps))
		for i, step := range s.Steps {
			clonedStep := AuthenticationStep{ID: step.ID}
			if step.Options != nil {
				clonedStep.Options = make([]AuthenticatorOption, len(step.Options))
				copy(clonedStep.Options, step.Options)
			}
			cloned.Steps[i] = clonedStep
		}
	}

	if s.RequestPathAuthenticators != nil {
		cloned.RequestPathAuthenticators = make([]string, len(s.RequestPathAuthenticators))
		copy(cloned.RequestPathAuthenticators, s.RequestPathAuthenticators)
	}

	return cloned
}

// SetScript replaces the adaptive script. The sequence type is left unchanged.
func (s *AuthenticationSequence) SetScript(script string) {
	s.Script = script
}

// ReplaceSteps replaces the steps wholesale. Used when switching between
// editor representations.
func (s *AuthenticationSequence) ReplaceSteps(steps []AuthenticationStep) {
	s.Steps = steps
	s.renumberSteps()
}

// MarkUserDefined marks the sequence as customized by an administrator.
func (s *AuthenticationSequence) MarkUserDefined() {
	s.Type = SequenceTypeUserDefined
}

// MarkDefault marks the sequence as the standard template.
func (s *AuthenticationSequence) MarkDefault() {
	s.Type = SequenceTypeDefault
}

// StepCount returns the number of authentication steps in the sequence.
func (s *AuthenticationSequence) StepCount() int {
	return len(s.Steps)
}

// AddStep appends a new empty step to the sequence and returns it.
func (s *AuthenticationSequence) AddStep() *AuthenticationStep {
	s.Steps = append(s.Steps, AuthenticationStep{
		ID:      len(s.Steps) + 1,
		Options: []AuthenticatorOption{},
	})
	return &s.Steps[len(s.Steps)-1]
}

// RemoveStep removes the step with the given ID and renumbers the remaining
// steps 1..n. Returns false when no such step exists.
func (s *AuthenticationSequence) RemoveStep(stepID int) bool {
	for i, step := range s.Steps {
		if step.ID == stepID {
			s.Steps = append(s.Steps[:i], s.Steps[i+1:]...)
			s.renumberSteps()
			return true
		}
	}
	return false
}

// StepByID returns the step with the given ID, or nil when no such step exists.
func (s *AuthenticationSequence) StepByID(stepID int) *AuthenticationStep {
	for i := range s.Steps {
		if s.Steps[i].ID == stepID {
			return &s.Steps[i]
		}
	}
	return nil
}

// renumberSteps rebuilds the step IDs after a structural change.
func (s *AuthenticationSequence) renumberSteps() {
	for i := range s.Steps {
		s.Steps[i].ID = i + 1
	}
}

// AddOption adds an authenticator option to the step. Options are unique by
// authenticator within a step; duplicates are rejected.
func (st *AuthenticationStep) AddOption(option AuthenticatorOption) bool {
	for _, existing := range st.Options {
		if existing.Authenticator == option.Authenticator {
			return false
		}
	}
	st.Options = append(st.Options, option)
	return true
}

// RemoveOption removes the option with the given authenticator from the step.
// Returns false when no such option exists.
func (st *AuthenticationStep) RemoveOption(authenticator string) bool {
	for i, existing := range st.Options {
		if existing.Authenticator == authenticator {
			st.Options = append(st.Options[:i], st.Options[i+1:]...)
			return true
		}
	}
	return false
}

// HasAuthenticator reports whether the step contains an option with the given
// authenticator.
func (st *AuthenticationStep) HasAuthenticator(authenticator string) bool {
	for _, option := range st.Options {
		if option.Authenticator == authenticator {
			return true
		}
	}
	return false
}
