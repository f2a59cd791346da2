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

// Package gatewaymock provides mock implementations of the identity server
// gateway interfaces for testing.
package gatewaymock

import (
	"github.com/asgardeo/flowcomposer/internal/gateway"
)

// MockGatewayClient is a mock implementation of the GatewayClientInterface.
type MockGatewayClient struct {
	// MockGetApplication defines the behavior for the GetApplication method.
	MockGetApplication func(appID string) (*gateway.Application, error)

	// MockUpdateAuthenticationSequence defines the behavior for the
	// UpdateAuthenticationSequence method.
	MockUpdateAuthenticationSequence func(appID string, request gateway.SequenceUpdateRequest) error

	// MockIsSystemApplication defines the behavior for the IsSystemApplication method.
	MockIsSystemApplication func(appName string) bool

	// GetApplicationCalls tracks the arguments passed to GetApplication.
	GetApplicationCalls []string

	// UpdateCalls tracks the arguments passed to UpdateAuthenticationSequence.
	UpdateCalls []struct {
		AppID   string
		Request gateway.SequenceUpdateRequest
	}
}

// GetApplication mocks the GetApplication method of the GatewayClientInterface.
func (m *MockGatewayClient) GetApplication(appID string) (*gateway.Application, error) {
	m.GetApplicationCalls = append(m.GetApplicationCalls, appID)

	if m.MockGetApplication != nil {
		return m.MockGetApplication(appID)
	}
	return &gateway.Application{ID: appID, Name: "app"}, nil
}

// UpdateAuthenticationSequence mocks the UpdateAuthenticationSequence method
// of the GatewayClientInterface.
func (m *MockGatewayClient) UpdateAuthenticationSequence(appID string,
	request gateway.SequenceUpdateRequest) error {
	m.UpdateCalls = append(m.UpdateCalls, struct {
		AppID   string
		Request gateway.SequenceUpdateRequest
	}{appID, request})

	if m.MockUpdateAuthenticationSequence != nil {
		return m.MockUpdateAuthenticationSequence(appID, request)
	}
	return nil
}

// IsSystemApplication mocks the IsSystemApplication method of the
// GatewayClientInterface.
func (m *MockGatewayClient) IsSystemApplication(appName string) bool {
	if m.MockIsSystemApplication != nil {
		return m.MockIsSystemApplication(appName)
	}
	return false
}
