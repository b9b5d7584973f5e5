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
	"fmt"
	"strings"

	"github.com/asgardeo/rosteradmin/internal/system/constants"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/utils"
)

// ReasonRule bounds a free-text justification. Lengths count characters of the trimmed text.
type ReasonRule struct {
	Min int
	Max int
}

// NewReasonRule creates a rule with the given minimum and the standard maximum.
func NewReasonRule(min int) ReasonRule {
	return ReasonRule{Min: min, Max: constants.MaxReasonLength}
}

func (r ReasonRule) max() int {
	if r.Max <= 0 {
		return constants.MaxReasonLength
	}
	return r.Max
}

// Validate checks a justification. Empty and whitespace-only text is rejected as missing.
func (r ReasonRule) Validate(field string, reason string) *FieldError {
	trimmed := strings.TrimSpace(reason)
	length := utils.RuneLength(trimmed)
	switch {
	case trimmed == "":
		return &FieldError{Field: field, Message: i18n.NewText("A reason is required", "السبب مطلوب")}
	case length < r.Min:
		return &FieldError{Field: field, Message: i18n.NewText(
			fmt.Sprintf("The reason must be at least %d characters", r.Min),
			fmt.Sprintf("يجب أن يتكون السبب من %d أحرف على الأقل", r.Min))}
	case length > r.max():
		return &FieldError{Field: field, Message: i18n.NewText(
			fmt.Sprintf("The reason must not exceed %d characters", r.max()),
			fmt.Sprintf("يجب ألا يتجاوز السبب %d حرفاً", r.max()))}
	}
	return nil
}

// Remaining returns the number of characters left before the maximum. It is negative
// when the text is too long.
func (r ReasonRule) Remaining(reason string) int {
	return r.max() - utils.RuneLength(reason)
}
