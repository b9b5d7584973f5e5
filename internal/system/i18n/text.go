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

package i18n

// Text is a bilingual message.
type Text struct {
	En string `json:"en,omitempty"`
	Ar string `json:"ar,omitempty"`
}

// NewText creates a bilingual message.
func NewText(en, ar string) Text {
	return Text{En: en, Ar: ar}
}

// In returns the variant for the given locale, falling back to the other variant when it is empty.
func (t Text) In(l Locale) string {
	if l == Arabic {
		if t.Ar != "" {
			return t.Ar
		}
		return t.En
	}
	if t.En != "" {
		return t.En
	}
	return t.Ar
}

// String returns the variant for the current locale.
func (t Text) String() string {
	return t.In(CurrentLocale())
}

// IsZero reports whether both variants are empty.
func (t Text) IsZero() bool {
	return t.En == "" && t.Ar == ""
}
