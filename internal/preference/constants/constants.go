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

// Package constants defines constants used by the preference service.
package constants

import "github.com/asgardeo/flowcomposer/internal/system/error/serviceerror"

// Client errors for preference management.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body
	// cannot be decoded.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "PRF-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorPreferenceNotFound is the error returned when the requested
	// preference has no stored value.
	ErrorPreferenceNotFound = serviceerror.ServiceError{
		Code:             "PRF-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Preference not found",
		ErrorDescription: "No value is stored for the requested preference",
	}
	// ErrorInvalidPreferenceKey is the error returned when the preference key
	// is not recognized.
	ErrorInvalidPreferenceKey = serviceerror.ServiceError{
		Code:             "PRF-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid preference key",
		ErrorDescription: "The preference key is not recognized",
	}
	// ErrorInvalidPreferenceValue is the error returned when the preference
	// value is not allowed for the key.
	ErrorInvalidPreferenceValue = serviceerror.ServiceError{
		Code:             "PRF-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid preference value",
		ErrorDescription: "The preference value is not allowed for the given key",
	}
	// ErrorMissingUserID is the error returned when the user ID is empty.
	ErrorMissingUserID = serviceerror.ServiceError{
		Code:             "PRF-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Missing user identifier",
		ErrorDescription: "A user identifier is required",
	}
)

// Server errors.
var (
	// ErrorInternalServerError is the generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "PRF-1500",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
