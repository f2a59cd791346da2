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

package constants

import "github.com/asgardeo/flowcomposer/internal/system/error/serviceerror"

// Client errors for login flow composition and session management.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body
	// cannot be decoded.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "FLC-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorSessionNotFound is the error returned when the requested edit
	// session does not exist or has expired.
	ErrorSessionNotFound = serviceerror.ServiceError{
		Code:             "FLC-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Session not found",
		ErrorDescription: "The edit session does not exist or has expired",
	}
	// ErrorSessionReadOnly is the error returned when a mutation is attempted
	// on a read-only session.
	ErrorSessionReadOnly = serviceerror.ServiceError{
		Code:             "FLC-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Session is read-only",
		ErrorDescription: "The edit session does not permit modifications",
	}
	// ErrorInvalidModeSwitch is the error returned when a mode switch request
	// is not valid for the session's current state.
	ErrorInvalidModeSwitch = serviceerror.ServiceError{
		Code:             "FLC-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid mode switch",
		ErrorDescription: "The requested editor mode change is not valid for the current session state",
	}
	// ErrorStepNotFound is the error returned when the referenced step does
	// not exist in the sequence.
	ErrorStepNotFound = serviceerror.ServiceError{
		Code:             "FLC-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Step not found",
		ErrorDescription: "The authentication step does not exist in the sequence",
	}
	// ErrorDuplicateOption is the error returned when an authenticator is
	// added twice to the same step.
	ErrorDuplicateOption = serviceerror.ServiceError{
		Code:             "FLC-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Duplicate authenticator option",
		ErrorDescription: "The authenticator is already present in the step",
	}
	// ErrorOptionNotFound is the error returned when the referenced option
	// does not exist in the step.
	ErrorOptionNotFound = serviceerror.ServiceError{
		Code:             "FLC-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Authenticator option not found",
		ErrorDescription: "The authenticator option does not exist in the step",
	}
	// ErrorCannotRemoveLastStep is the error returned when removing a step
	// would leave the sequence empty.
	ErrorCannotRemoveLastStep = serviceerror.ServiceError{
		Code:             "FLC-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Cannot remove step",
		ErrorDescription: "An authentication sequence must contain at least one step",
	}
)

// Step validation errors.
var (
	// ErrorIdentifierFirstAlone is the error returned when a single-step
	// sequence offers only the identifier-first authenticator.
	ErrorIdentifierFirstAlone = serviceerror.ServiceError{
		Code:             "FLC-1401",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid authentication sequence",
		ErrorDescription: "The identifier-first authenticator cannot be the only authenticator in the flow",
	}
	// ErrorIdentifierFirstCombined is the error returned when identifier-first
	// shares a step with other authenticator options.
	ErrorIdentifierFirstCombined = serviceerror.ServiceError{
		Code:             "FLC-1402",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid authentication sequence",
		ErrorDescription: "The identifier-first authenticator cannot be combined with other authenticators in the same step",
	}
	// ErrorEmptyStep is the error returned when a step has no authenticator
	// options.
	ErrorEmptyStep = serviceerror.ServiceError{
		Code:             "FLC-1403",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid authentication sequence",
		ErrorDescription: "Every authentication step must contain at least one authenticator option",
	}
)

// Server errors.
var (
	// ErrorInternalServerError is the generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "FLC-1500",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorGatewayUnavailable is the error returned when the identity server
	// cannot be reached.
	ErrorGatewayUnavailable = serviceerror.ServiceError{
		Code:             "FLC-1501",
		Type:             serviceerror.ServerErrorType,
		Error:            "Identity server unavailable",
		ErrorDescription: "The identity server could not be reached to complete the operation",
	}
	// ErrorScriptRejected is the error returned when the identity server
	// rejects the adaptive script.
	ErrorScriptRejected = serviceerror.ServiceError{
		Code:             "FLC-1502",
		Type:             serviceerror.ClientErrorType,
		Error:            "Adaptive script rejected",
		ErrorDescription: "The adaptive script contains disallowed programming constructs",
	}
	// ErrorApplicationNotFound is the error returned when the application the
	// session edits no longer exists.
	ErrorApplicationNotFound = serviceerror.ServiceError{
		Code:             "FLC-1503",
		Type:             serviceerror.ClientErrorType,
		Error:            "Application not found",
		ErrorDescription: "The application associated with the edit session does not exist",
	}
)
