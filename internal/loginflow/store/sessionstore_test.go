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

package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/flowcomposer/internal/loginflow/constants"
	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
	"github.com/asgardeo/flowcomposer/internal/system/config"
)

const testSessionID = "test-session-id"

type SessionStoreTestSuite struct {
	suite.Suite
	store SessionStoreInterface
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreTestSuite))
}

func (suite *SessionStoreTestSuite) SetupSuite() {
	config.ResetComposerRuntime()
	err := config.InitializeComposerRuntime("/tmp", &config.Config{})
	assert.NoError(suite.T(), err)
}

func (suite *SessionStoreTestSuite) SetupTest() {
	instance = nil
	once = sync.Once{}

	suite.store = GetSessionStore()
	suite.store.ClearSessionStore()
}

func (suite *SessionStoreTestSuite) TearDownTest() {
	if suite.store != nil {
		suite.store.ClearSessionStore()
	}
}

func testSession() *model.EditSession {
	return &model.EditSession{
		ID:            testSessionID,
		ApplicationID: "app-123",
		UserID:        "user-123",
		Mode:          constants.EditorModeClassic,
		State:         constants.SessionStateClassic,
		Sequence:      model.DefaultSequence(),
	}
}

func (suite *SessionStoreTestSuite) TestGetSessionStoreSingleton() {
	store1 := GetSessionStore()
	store2 := GetSessionStore()
	assert.Same(suite.T(), store1, store2)
}

func (suite *SessionStoreTestSuite) TestAddAndGetSession() {
	session := testSession()
	suite.store.AddSession(session)

	found, retrieved := suite.store.GetSession(testSessionID)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), session, retrieved)
	assert.NotSame(suite.T(), session, retrieved)
}

func (suite *SessionStoreTestSuite) TestGetSessionReturnsIndependentCopy() {
	suite.store.AddSession(testSession())

	_, first := suite.store.GetSession(testSessionID)
	first.Sequence.AddStep()
	first.State = constants.SessionStateSwitchPending

	// Mutations on a retrieved session do not reach the store until it is
	// written back.
	_, second := suite.store.GetSession(testSessionID)
	assert.Equal(suite.T(), 1, second.Sequence.StepCount())
	assert.Equal(suite.T(), constants.SessionStateClassic, second.State)
	assert.NotSame(suite.T(), first.Sequence, second.Sequence)
}

func (suite *SessionStoreTestSuite) TestAddSessionWithEmptyID() {
	suite.store.AddSession(&model.EditSession{})

	found, _ := suite.store.GetSession("")
	assert.False(suite.T(), found)
}

func (suite *SessionStoreTestSuite) TestAddNilSession() {
	suite.store.AddSession(nil)

	found, _ := suite.store.GetSession("")
	assert.False(suite.T(), found)
}

func (suite *SessionStoreTestSuite) TestGetSessionNotFound() {
	found, session := suite.store.GetSession("unknown")
	assert.False(suite.T(), found)
	assert.Nil(suite.T(), session)
}

func (suite *SessionStoreTestSuite) TestGetSessionExpired() {
	expiredStore := newSessionStore(-time.Minute)
	expiredStore.AddSession(testSession())

	found, session := expiredStore.GetSession(testSessionID)
	assert.False(suite.T(), found)
	assert.Nil(suite.T(), session)
}

func (suite *SessionStoreTestSuite) TestClearSession() {
	suite.store.AddSession(testSession())
	suite.store.ClearSession(testSessionID)

	found, _ := suite.store.GetSession(testSessionID)
	assert.False(suite.T(), found)
}

func (suite *SessionStoreTestSuite) TestClearSessionStore() {
	suite.store.AddSession(testSession())
	another := testSession()
	another.ID = "another-session"
	suite.store.AddSession(another)

	suite.store.ClearSessionStore()

	found1, _ := suite.store.GetSession(testSessionID)
	found2, _ := suite.store.GetSession("another-session")
	assert.False(suite.T(), found1)
	assert.False(suite.T(), found2)
}

func (suite *SessionStoreTestSuite) TestUpdateSessionExtendsValidity() {
	session := testSession()
	suite.store.AddSession(session)

	session.State = constants.SessionStateSwitchPending
	suite.store.UpdateSession(session)

	found, retrieved := suite.store.GetSession(testSessionID)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), constants.SessionStateSwitchPending, retrieved.State)
}

func (suite *SessionStoreTestSuite) TestValidityPeriodFromConfig() {
	config.ResetComposerRuntime()
	err := config.InitializeComposerRuntime("/tmp", &config.Config{
		Flow: config.FlowConfig{SessionValidityPeriod: 60},
	})
	assert.NoError(suite.T(), err)
	defer func() {
		config.ResetComposerRuntime()
		assert.NoError(suite.T(), config.InitializeComposerRuntime("/tmp", &config.Config{}))
	}()

	assert.Equal(suite.T(), time.Minute, getValidityPeriod())
}
