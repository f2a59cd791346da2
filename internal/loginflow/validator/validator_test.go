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

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/flowcomposer/internal/loginflow/constants"
	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func step(id int, authenticators ...string) model.AuthenticationStep {
	options := make([]model.AuthenticatorOption, 0, len(authenticators))
	for _, authenticator := range authenticators {
		options = append(options, model.AuthenticatorOption{Authenticator: authenticator})
	}
	return model.AuthenticationStep{ID: id, Options: options}
}

func (suite *ValidatorTestSuite) TestValidateStepsRejectsLoneIdentifierFirst() {
	steps := []model.AuthenticationStep{
		step(1, constants.AuthenticatorIdentifierFirst),
	}

	svcErr := ValidateSteps(steps)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorIdentifierFirstAlone.Code, svcErr.Code)
}

func (suite *ValidatorTestSuite) TestValidateStepsRejectsIdentifierFirstCombined() {
	steps := []model.AuthenticationStep{
		step(1, constants.AuthenticatorIdentifierFirst, "sms-otp"),
	}

	svcErr := ValidateSteps(steps)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorIdentifierFirstCombined.Code, svcErr.Code)
}

func (suite *ValidatorTestSuite) TestValidateStepsAllowsIdentifierFirstInMultiStepFlow() {
	steps := []model.AuthenticationStep{
		step(1, constants.AuthenticatorIdentifierFirst),
		step(2, "sms-otp"),
	}

	assert.Nil(suite.T(), ValidateSteps(steps))
}

func (suite *ValidatorTestSuite) TestValidateStepsAllowsRegularSingleStep() {
	steps := []model.AuthenticationStep{
		step(1, constants.AuthenticatorBasic),
	}

	assert.Nil(suite.T(), ValidateSteps(steps))
}

func (suite *ValidatorTestSuite) TestValidateStepsAllowsSingleStepWithMultipleOptions() {
	steps := []model.AuthenticationStep{
		step(1, constants.AuthenticatorBasic, "totp"),
	}

	assert.Nil(suite.T(), ValidateSteps(steps))
}

func (suite *ValidatorTestSuite) TestValidateStepsRejectsEmptyStep() {
	testCases := []struct {
		name  string
		steps []model.AuthenticationStep
	}{
		{"OnlyStepEmpty", []model.AuthenticationStep{step(1)}},
		{"SecondStepEmpty", []model.AuthenticationStep{step(1, constants.AuthenticatorBasic), step(2)}},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			svcErr := ValidateSteps(tc.steps)
			assert.NotNil(t, svcErr)
			assert.Equal(t, constants.ErrorEmptyStep.Code, svcErr.Code)
		})
	}
}

func (suite *ValidatorTestSuite) TestValidateStepsRejectsEmptySequence() {
	for _, steps := range [][]model.AuthenticationStep{nil, {}} {
		svcErr := ValidateSteps(steps)
		assert.NotNil(suite.T(), svcErr)
		assert.Equal(suite.T(), constants.ErrorInvalidRequestFormat.Code, svcErr.Code)
	}
}
