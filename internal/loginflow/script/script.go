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

// Package script generates and classifies adaptive authentication scripts.
//
// The generated script is the canonical template that executes every step of
// a sequence in order. A script is "default" when it is equivalent to that
// template for the sequence's step count, ignoring whitespace, which lets the
// composer regenerate it safely after structural edits.
package script

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	scriptHeader = "var onLoginRequest = function(context) {"
	scriptFooter = "};"
)

// GenerateScript returns the default adaptive script for a sequence with
// stepCount steps. The script executes steps 1..stepCount in order.
func GenerateScript(stepCount int) string {
	var builder strings.Builder
	builder.WriteString(scriptHeader)
	builder.WriteString("\n")
	for step := 1; step <= stepCount; step++ {
		builder.WriteString(fmt.Sprintf("    executeStep(%d);\n", step))
	}
	builder.WriteString(scriptFooter)
	builder.WriteString("\n")
	return builder.String()
}

// IsEmptyScript reports whether the script contains no content. A script made
// up entirely of whitespace is empty.
func IsEmptyScript(script string) bool {
	return strings.TrimSpace(script) == ""
}

// IsDefaultScript reports whether the script carries no custom logic: it is
// empty, or equivalent to the generated default for the given step count.
// Formatting differences are ignored; any change to the executable content
// makes the script non-default.
func IsDefaultScript(script string, stepCount int) bool {
	if IsEmptyScript(script) {
		return true
	}
	return stripWhitespace(script) == stripWhitespace(GenerateScript(stepCount))
}

func stripWhitespace(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
