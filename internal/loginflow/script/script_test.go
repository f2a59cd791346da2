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

package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ScriptTestSuite struct {
	suite.Suite
}

func TestScriptSuite(t *testing.T) {
	suite.Run(t, new(ScriptTestSuite))
}

func (suite *ScriptTestSuite) TestGenerateScript() {
	script := GenerateScript(2)
	expected := "var onLoginRequest = function(context) {\n" +
		"    executeStep(1);\n" +
		"    executeStep(2);\n" +
		"};\n"
	assert.Equal(suite.T(), expected, script)
}

func (suite *ScriptTestSuite) TestGenerateScriptWithNoSteps() {
	script := GenerateScript(0)
	expected := "var onLoginRequest = function(context) {\n};\n"
	assert.Equal(suite.T(), expected, script)
}

func (suite *ScriptTestSuite) TestGenerateScriptIsDeterministic() {
	for _, stepCount := range []int{1, 2, 3, 5, 10} {
		assert.Equal(suite.T(), GenerateScript(stepCount), GenerateScript(stepCount))
		assert.True(suite.T(), IsDefaultScript(GenerateScript(stepCount), stepCount))
	}
}

func (suite *ScriptTestSuite) TestIsDefaultScriptIsStepCountSensitive() {
	assert.False(suite.T(), IsDefaultScript(GenerateScript(3), 4))
	assert.False(suite.T(), IsDefaultScript(GenerateScript(4), 3))
}

func (suite *ScriptTestSuite) TestIsDefaultScriptIgnoresFormatting() {
	reformatted := "var onLoginRequest = function(context) {\n" +
		"\texecuteStep(1);\n\n" +
		"\texecuteStep(2);\n" +
		"};"
	assert.True(suite.T(), IsDefaultScript(reformatted, 2))
}

func (suite *ScriptTestSuite) TestIsDefaultScriptRejectsContentChanges() {
	customized := "var onLoginRequest = function(context) {\n" +
		"    if (context.request.ip === '10.0.0.1') {\n" +
		"        executeStep(1);\n" +
		"    }\n" +
		"    executeStep(2);\n" +
		"};\n"
	assert.False(suite.T(), IsDefaultScript(customized, 2))
}

func (suite *ScriptTestSuite) TestIsEmptyScript() {
	testCases := []struct {
		name     string
		script   string
		expected bool
	}{
		{"EmptyString", "", true},
		{"WhitespaceOnly", "   \n\t  ", true},
		{"DefaultScript", GenerateScript(1), false},
		{"CustomScript", "var onLoginRequest = function(context) {};", false},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsEmptyScript(tc.script))
		})
	}
}

func (suite *ScriptTestSuite) TestIsDefaultScriptWithEmptyScript() {
	// An empty script carries no custom logic, so it counts as default for
	// any step count.
	assert.True(suite.T(), IsDefaultScript("", 1))
	assert.True(suite.T(), IsDefaultScript("  \n ", 3))
}
