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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

func TestReasonRuleValidate(t *testing.T) {
	rule := ReasonRule{Min: 10, Max: 500}
	tests := []struct {
		name   string
		reason string
		valid  bool
	}{
		{name: "Empty", reason: "", valid: false},
		{name: "WhitespaceOnly", reason: "   ", valid: false},
		{name: "BelowMinimum", reason: strings.Repeat("a", 9), valid: false},
		{name: "PaddedBelowMinimum", reason: "  " + strings.Repeat("a", 9) + "  ", valid: false},
		{name: "ExactlyMinimum", reason: strings.Repeat("a", 10), valid: true},
		{name: "ExactlyMaximum", reason: strings.Repeat("a", 500), valid: true},
		{name: "AboveMaximum", reason: strings.Repeat("a", 501), valid: false},
		{name: "ArabicAtMinimum", reason: strings.Repeat("س", 10), valid: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fe := rule.Validate("reason", tc.reason)
			if tc.valid {
				assert.Nil(t, fe)
				return
			}
			require.NotNil(t, fe)
			assert.Equal(t, "reason", fe.Field)
			assert.NotEmpty(t, fe.Message.In(i18n.English))
			assert.NotEmpty(t, fe.Message.In(i18n.Arabic))
		})
	}
}

func TestReasonRuleRequiredMessage(t *testing.T) {
	fe := ReasonRule{Min: 3}.Validate("reason", "  ")

	require.NotNil(t, fe)
	assert.Equal(t, "A reason is required", fe.Message.In(i18n.English))
}

func TestReasonRuleRemaining(t *testing.T) {
	rule := NewReasonRule(3)

	assert.Equal(t, 500, rule.Remaining(""))
	assert.Equal(t, 495, rule.Remaining("سلامة"))
	assert.Equal(t, -1, rule.Remaining(strings.Repeat("a", 501)))
	assert.Equal(t, 18, ReasonRule{Min: 1, Max: 20}.Remaining("ab"))
}
