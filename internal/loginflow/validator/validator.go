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

// Package validator checks authentication sequences before persistence.
package validator

import (
	"github.com/asgardeo/flowcomposer/internal/loginflow/constants"
	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
	"github.com/asgardeo/flowcomposer/internal/system/error/serviceerror"
)

// ValidateSteps checks the steps of a sequence against the composition rules
// and returns the first violation found, or nil when the sequence is valid.
// A sequence with no steps at all is never valid.
//
// Identifier-first only collects a username, so a single-step flow cannot use
// it alone and cannot mix it with other options. The restriction applies to
// the first step of single-step flows only; multi-step flows may place
// identifier-first anywhere.
func ValidateSteps(steps []model.AuthenticationStep) *serviceerror.ServiceError {
	if len(steps) == 0 {
		return &constants.ErrorInvalidRequestFormat
	}

	for _, step := range steps {
		if len(step.Options) == 0 {
			return &constants.ErrorEmptyStep
		}
	}

	if len(steps) != 1 {
		return nil
	}

	first := steps[0]
	if !first.HasAuthenticator(constants.AuthenticatorIdentifierFirst) {
		return nil
	}
	if len(first.Options) == 1 {
		return &constants.ErrorIdentifierFirstAlone
	}
	return &constants.ErrorIdentifierFirstCombined
}
