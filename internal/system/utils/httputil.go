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

package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/asgardeo/flowcomposer/internal/system/log"
)

// DecodeJSONBody decodes the JSON body of an HTTP request into the given type.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	defer func() {
		if closeErr := r.Body.Close(); closeErr != nil {
			log.GetLogger().Error("Failed to close request body", log.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.New("failed to read request body")
	}

	var decoded T
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.New("failed to parse request body: " + err.Error())
	}

	return &decoded, nil
}
