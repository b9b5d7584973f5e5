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

// Package i18n provides the locale model of the admin client.
package i18n

import (
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
)

// Locale is a supported UI locale.
type Locale string

const (
	// English is the English locale.
	English Locale = "en"
	// Arabic is the Arabic locale.
	Arabic Locale = "ar"
)

// Direction is the text direction of a locale.
type Direction string

const (
	// LeftToRight is used by English.
	LeftToRight Direction = "ltr"
	// RightToLeft is used by Arabic.
	RightToLeft Direction = "rtl"
)

var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

var current atomic.Value

func init() {
	current.Store(English)
}

// ParseLocale negotiates a supported locale from a language tag or an Accept-Language value.
// Unknown input resolves to English.
func ParseLocale(value string) Locale {
	value = strings.TrimSpace(value)
	if value == "" {
		return English
	}
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	if supported[index] == language.Arabic {
		return Arabic
	}
	return English
}

// String returns the BCP 47 form of the locale.
func (l Locale) String() string {
	return string(l)
}

// Direction returns the text direction for the locale.
func (l Locale) Direction() Direction {
	if l == Arabic {
		return RightToLeft
	}
	return LeftToRight
}

// SetCurrentLocale sets the process-wide UI locale.
func SetCurrentLocale(l Locale) {
	if l != Arabic {
		l = English
	}
	current.Store(l)
}

// CurrentLocale returns the process-wide UI locale.
func CurrentLocale() Locale {
	return current.Load().(Locale)
}
