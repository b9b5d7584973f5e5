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

// Package crud implements the generic entity store, list controller and mutation form
// that every roster entity module is built from.
package crud

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// ID is an opaque entity identifier. The backend sends it as a JSON number or string.
type ID string

// ParseID parses a user supplied identifier.
func ParseID(value string) (ID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("identifier is empty")
	}
	return ID(value), nil
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// Int returns the identifier as a positive integer when it is numeric.
func (id ID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("identifier must be a number or a string")
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler. Numeric identifiers are written as numbers.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Int(); ok && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

// Entity is a backend record managed through a Store.
type Entity interface {
	EntityID() ID
	DisplayName(locale i18n.Locale) string
}

// BilingualName holds the Arabic and English names of a record.
type BilingualName struct {
	NameArabic  string `json:"nameArabic"`
	NameEnglish string `json:"nameEnglish"`
}

// Name returns the name for the locale, falling back to the other language.
func (n BilingualName) Name(locale i18n.Locale) string {
	return i18n.NewText(n.NameEnglish, n.NameArabic).In(locale)
}

// Audit holds the audit fields returned with every record.
type Audit struct {
	CreatedAt     rest.Timestamp `json:"createdAt"`
	CreatedByName string         `json:"createdByName,omitempty"`
	UpdatedAt     rest.Timestamp `json:"updatedAt"`
	UpdatedByName string         `json:"updatedByName,omitempty"`
}
