/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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
	"errors"
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether the value is empty or contains only whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// RuneLength returns the number of characters in the value.
func RuneLength(value string) int {
	return utf8.RuneCountInString(value)
}

// Truncate shortens the value to at most max characters.
func Truncate(value string, max int) string {
	if max < 0 || utf8.RuneCountInString(value) <= max {
		return value
	}
	return string([]rune(value)[:max])
}

// ParseKeyValuePairs parses "key=value" pairs into a map. Later keys override earlier ones.
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	output := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, errors.New("invalid key=value pair: " + pair)
		}
		output[key] = value
	}
	return output, nil
}
