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

package crud

import (
	"strconv"
	"strings"

	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

// String returns the trimmed value of a field.
func (v Values) String(name string) string {
	return strings.TrimSpace(v[name])
}

// Int returns the integer value of a field, or zero when it is empty or malformed.
func (v Values) Int(name string) int64 {
	n, err := strconv.ParseInt(v.String(name), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Bool returns the boolean value of a field, or nil when it is empty or malformed.
func (v Values) Bool(name string) *bool {
	b, err := strconv.ParseBool(v.String(name))
	if err != nil {
		return nil
	}
	return &b
}

// Has reports whether the field was submitted.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// FormatBool renders a boolean form value.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// StatusLabel returns the display text of an active flag.
func StatusLabel(active bool) i18n.Text {
	if active {
		return i18n.NewText("Active", "نشط")
	}
	return i18n.NewText("Inactive", "غير نشط")
}
