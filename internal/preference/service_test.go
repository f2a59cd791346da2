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

package preference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	flowconst "github.com/asgardeo/flowcomposer/internal/loginflow/constants"
	"github.com/asgardeo/flowcomposer/internal/preference/constants"
	"github.com/asgardeo/flowcomposer/internal/preference/model"
	"github.com/asgardeo/flowcomposer/tests/mocks/preferencestoremock"
)

type PreferenceServiceTestSuite struct {
	suite.Suite
	store   *preferencestoremock.MockPreferenceStore
	service PreferenceServiceInterface
}

func TestPreferenceServiceSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.store = &preferencestoremock.MockPreferenceStore{}
	suite.service = newPreferenceService(suite.store)
}

func (suite *PreferenceServiceTestSuite) TestGetPreference() {
	suite.store.MockGetPreference = func(userID, key string) (string, error) {
		return "visual", nil
	}

	pref, svcErr := suite.service.GetPreference("user-123", flowconst.PreferredEditorKey)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "user-123", pref.UserID)
	assert.Equal(suite.T(), flowconst.PreferredEditorKey, pref.Key)
	assert.Equal(suite.T(), "visual", pref.Value)
}

func (suite *PreferenceServiceTestSuite) TestGetPreferenceNotFound() {
	pref, svcErr := suite.service.GetPreference("user-123", flowconst.PreferredEditorKey)

	assert.Nil(suite.T(), pref)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorPreferenceNotFound.Code, svcErr.Code)
}

func (suite *PreferenceServiceTestSuite) TestGetPreferenceMissingUserID() {
	_, svcErr := suite.service.GetPreference("", flowconst.PreferredEditorKey)

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorMissingUserID.Code, svcErr.Code)
}

func (suite *PreferenceServiceTestSuite) TestGetPreferenceUnrecognizedKey() {
	_, svcErr := suite.service.GetPreference("user-123", "someOther.key")

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidPreferenceKey.Code, svcErr.Code)
}

func (suite *PreferenceServiceTestSuite) TestGetPreferenceStoreFailure() {
	suite.store.MockGetPreference = func(userID, key string) (string, error) {
		return "", errors.New("connection refused")
	}

	_, svcErr := suite.service.GetPreference("user-123", flowconst.PreferredEditorKey)

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *PreferenceServiceTestSuite) TestSetPreference() {
	svcErr := suite.service.SetPreference(model.UserPreference{
		UserID: "user-123",
		Key:    flowconst.PreferredEditorKey,
		Value:  "classic",
	})

	assert.Nil(suite.T(), svcErr)
	assert.Len(suite.T(), suite.store.UpsertCalls, 1)
	assert.Equal(suite.T(), "classic", suite.store.UpsertCalls[0].Value)
}

func (suite *PreferenceServiceTestSuite) TestSetPreferenceRejectsUnknownValue() {
	svcErr := suite.service.SetPreference(model.UserPreference{
		UserID: "user-123",
		Key:    flowconst.PreferredEditorKey,
		Value:  "emacs",
	})

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidPreferenceValue.Code, svcErr.Code)
	assert.Empty(suite.T(), suite.store.UpsertCalls)
}

func (suite *PreferenceServiceTestSuite) TestSetPreferenceRejectsUnknownKey() {
	svcErr := suite.service.SetPreference(model.UserPreference{
		UserID: "user-123",
		Key:    "someOther.key",
		Value:  "classic",
	})

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidPreferenceKey.Code, svcErr.Code)
}

func (suite *PreferenceServiceTestSuite) TestSetPreferenceStoreFailure() {
	suite.store.MockUpsertPreference = func(preference model.UserPreference) error {
		return errors.New("connection refused")
	}

	svcErr := suite.service.SetPreference(model.UserPreference{
		UserID: "user-123",
		Key:    flowconst.PreferredEditorKey,
		Value:  "visual",
	})

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *PreferenceServiceTestSuite) TestDeletePreference() {
	svcErr := suite.service.DeletePreference("user-123", flowconst.PreferredEditorKey)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), []string{"user-123:" + flowconst.PreferredEditorKey}, suite.store.DeleteCalls)
}

func (suite *PreferenceServiceTestSuite) TestDeletePreferenceMissingUserID() {
	svcErr := suite.service.DeletePreference("", flowconst.PreferredEditorKey)

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorMissingUserID.Code, svcErr.Code)
}
