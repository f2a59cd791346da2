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

package config

import "sync"

// ComposerRuntime holds the runtime configuration for the composer server.
type ComposerRuntime struct {
	ComposerHome string `yaml:"composer_home"`
	Config       Config `yaml:"config"`
}

var (
	runtimeConfig *ComposerRuntime
	once          sync.Once
)

// InitializeComposerRuntime initializes the ComposerRuntime configuration.
func InitializeComposerRuntime(composerHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &ComposerRuntime{
			ComposerHome: composerHome,
			Config:       *config,
		}
	})

	return nil
}

// GetComposerRuntime returns the ComposerRuntime configuration.
func GetComposerRuntime() *ComposerRuntime {
	if runtimeConfig == nil {
		panic("ComposerRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetComposerRuntime resets the ComposerRuntime.
// This should only be used in tests to reset the singleton state.
func ResetComposerRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
