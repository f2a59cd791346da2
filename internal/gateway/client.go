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

// Package gateway provides the REST client for the backend identity server's
// application management API.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/asgardeo/flowcomposer/internal/system/config"
	"github.com/asgardeo/flowcomposer/internal/system/constants"
	httpservice "github.com/asgardeo/flowcomposer/internal/system/http"
	"github.com/asgardeo/flowcomposer/internal/system/log"
)

// GatewayClientInterface defines the operations the composer needs from the
// identity server.
type GatewayClientInterface interface {
	GetApplication(appID string) (*Application, error)
	UpdateAuthenticationSequence(appID string, request SequenceUpdateRequest) error
	IsSystemApplication(appName string) bool
}

// GatewayClient is the default implementation of GatewayClientInterface.
type GatewayClient struct {
	httpClient httpservice.HTTPClientInterface
	baseURL    string
	authToken  string
	systemApps []string
}

var (
	instance *GatewayClient
	once     sync.Once
)

// GetGatewayClient returns a singleton instance of GatewayClient configured
// from the runtime configuration.
func GetGatewayClient() GatewayClientInterface {
	once.Do(func() {
		gatewayConfig := config.GetComposerRuntime().Config.Gateway
		flowConfig := config.GetComposerRuntime().Config.Flow

		timeout := time.Duration(gatewayConfig.Timeout) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}

		instance = &GatewayClient{
			httpClient: httpservice.NewHTTPClientWithTimeout(timeout),
			baseURL:    gatewayConfig.BaseURL,
			authToken:  gatewayConfig.AuthToken,
			systemApps: flowConfig.SystemApplications,
		}
	})

	return instance
}

// newGatewayClient creates a new GatewayClient with the given dependencies.
func newGatewayClient(httpClient httpservice.HTTPClientInterface, baseURL, authToken string,
	systemApps []string) GatewayClientInterface {
	return &GatewayClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		authToken:  authToken,
		systemApps: systemApps,
	}
}

// GetApplication retrieves an application from the identity server.
func (gc *GatewayClient) GetApplication(appID string) (*Application, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Retrieving application", log.String(log.LoggerKeyApplicationID, appID))

	req, err := http.NewRequest(http.MethodGet, gc.baseURL+applicationsPath+"/"+appID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	gc.setHeaders(req)

	resp, err := gc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, gc.parseErrorResponse(resp)
	}

	var app Application
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		return nil, fmt.Errorf("failed to decode application response: %w", err)
	}

	return &app, nil
}

// UpdateAuthenticationSequence sends a partial application update carrying
// the new authentication sequence to the identity server.
func (gc *GatewayClient) UpdateAuthenticationSequence(appID string, request SequenceUpdateRequest) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating authentication sequence", log.String(log.LoggerKeyApplicationID, appID))

	jsonPayload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal update payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPatch, gc.baseURL+applicationsPath+"/"+appID,
		bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	gc.setHeaders(req)

	resp, err := gc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	logger.Debug("Received response from identity server", log.Int("statusCode", resp.StatusCode))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return gc.parseErrorResponse(resp)
	}

	return nil
}

// IsSystemApplication reports whether the application name belongs to a
// protected, pre-provisioned system application.
func (gc *GatewayClient) IsSystemApplication(appName string) bool {
	return slices.Contains(gc.systemApps, appName)
}

func (gc *GatewayClient) setHeaders(req *http.Request) {
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)
	if gc.authToken != "" {
		req.Header.Set(constants.AuthorizationHeaderName, "Bearer "+gc.authToken)
	}
}

// parseErrorResponse converts a non-success identity server response into an
// APIError. Bodies that are not valid JSON still yield an APIError carrying
// the status code.
func (gc *GatewayClient) parseErrorResponse(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	if err := json.Unmarshal(bodyBytes, apiErr); err != nil {
		apiErr.Description = string(bodyBytes)
	}

	return apiErr
}
