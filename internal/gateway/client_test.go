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

package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
	httpservice "github.com/asgardeo/flowcomposer/internal/system/http"
)

type GatewayClientTestSuite struct {
	suite.Suite
}

func TestGatewayClientSuite(t *testing.T) {
	suite.Run(t, new(GatewayClientTestSuite))
}

func (suite *GatewayClientTestSuite) newClient(server *httptest.Server) GatewayClientInterface {
	return newGatewayClient(httpservice.NewHTTPClient(), server.URL, "test-token",
		[]string{"Console", "My Account"})
}

func (suite *GatewayClientTestSuite) TestGetApplication() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodGet, r.Method)
		assert.Equal(suite.T(), applicationsPath+"/app-123", r.URL.Path)
		assert.Equal(suite.T(), "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(suite.T(), "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(Application{
			ID:   "app-123",
			Name: "My Application",
			AuthenticationSequence: &model.AuthenticationSequence{
				Type: model.SequenceTypeDefault,
				Steps: []model.AuthenticationStep{
					{ID: 1, Options: []model.AuthenticatorOption{
						{Authenticator: "BasicAuthenticator", IdP: "LOCAL"}}},
				},
			},
		})
		assert.NoError(suite.T(), err)
	}))
	defer server.Close()

	app, err := suite.newClient(server).GetApplication("app-123")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "app-123", app.ID)
	assert.Equal(suite.T(), "My Application", app.Name)
	assert.NotNil(suite.T(), app.AuthenticationSequence)
	assert.Equal(suite.T(), 1, app.AuthenticationSequence.StepCount())
}

func (suite *GatewayClientTestSuite) TestGetApplicationNotFound() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte(`{"code":"APP-60002","message":"Resource not found",` +
			`"description":"Application cannot be found"}`))
		assert.NoError(suite.T(), err)
	}))
	defer server.Close()

	app, err := suite.newClient(server).GetApplication("missing")

	assert.Nil(suite.T(), app)
	var apiErr *APIError
	assert.True(suite.T(), errors.As(err, &apiErr))
	assert.Equal(suite.T(), http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(suite.T(), "APP-60002", apiErr.Code)
	assert.False(suite.T(), apiErr.IsScriptRejected())
}

func (suite *GatewayClientTestSuite) TestUpdateAuthenticationSequence() {
	var received SequenceUpdateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPatch, r.Method)
		assert.Equal(suite.T(), applicationsPath+"/app-123", r.URL.Path)
		assert.Equal(suite.T(), "application/json", r.Header.Get("Content-Type"))

		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(suite.T(), err)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sequence := &model.AuthenticationSequence{
		Type: model.SequenceTypeUserDefined,
		Steps: []model.AuthenticationStep{
			{ID: 1, Options: []model.AuthenticatorOption{
				{Authenticator: "BasicAuthenticator", IdP: "LOCAL"}}},
		},
		Script: "var onLoginRequest = function(context) {\n    executeStep(1);\n};",
	}

	err := suite.newClient(server).UpdateAuthenticationSequence("app-123",
		SequenceUpdateRequest{AuthenticationSequence: sequence})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.SequenceTypeUserDefined, received.AuthenticationSequence.Type)
	assert.Equal(suite.T(), sequence.Script, received.AuthenticationSequence.Script)
	// Name is omitted from the payload for regular applications.
	assert.Equal(suite.T(), "", received.Name)
}

func (suite *GatewayClientTestSuite) TestUpdateScriptRejected() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, err := w.Write([]byte(`{"code":"APP-60001","message":"Invalid script",` +
			`"description":"Disallowed programming constructs in the script"}`))
		assert.NoError(suite.T(), err)
	}))
	defer server.Close()

	err := suite.newClient(server).UpdateAuthenticationSequence("app-123",
		SequenceUpdateRequest{AuthenticationSequence: &model.AuthenticationSequence{}})

	var apiErr *APIError
	assert.True(suite.T(), errors.As(err, &apiErr))
	assert.True(suite.T(), apiErr.IsScriptRejected())
}

func (suite *GatewayClientTestSuite) TestNonJSONErrorBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, err := w.Write([]byte("upstream timed out"))
		assert.NoError(suite.T(), err)
	}))
	defer server.Close()

	_, err := suite.newClient(server).GetApplication("app-123")

	var apiErr *APIError
	assert.True(suite.T(), errors.As(err, &apiErr))
	assert.Equal(suite.T(), http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(suite.T(), "upstream timed out", apiErr.Description)
}

func (suite *GatewayClientTestSuite) TestServerUnreachable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := suite.newClient(server).GetApplication("app-123")

	assert.Error(suite.T(), err)
	var apiErr *APIError
	assert.False(suite.T(), errors.As(err, &apiErr))
}

func (suite *GatewayClientTestSuite) TestIsSystemApplication() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()
	client := suite.newClient(server)

	assert.True(suite.T(), client.IsSystemApplication("Console"))
	assert.True(suite.T(), client.IsSystemApplication("My Account"))
	assert.False(suite.T(), client.IsSystemApplication("My Application"))
}
