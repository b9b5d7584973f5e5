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

package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/log"
)

// Request describes a call to the roster backend.
type Request struct {
	Method string
	// Path is relative to the configured API prefix, for example "Departments/12".
	Path  string
	Query url.Values
	Body  interface{}
}

// Envelope is the response envelope returned by the roster backend.
type Envelope[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data"`
	Message   string    `json:"message,omitempty"`
	MessageEn string    `json:"messageEn,omitempty"`
	MessageAr string    `json:"messageAr,omitempty"`
	Errors    ErrorList `json:"errors,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
}

// ListData is the paginated data payload of a list response.
type ListData[T any] struct {
	Items       []T  `json:"items"`
	TotalCount  int  `json:"totalCount"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// ErrorPayload is the body of a failed response.
type ErrorPayload struct {
	Success   *bool     `json:"success,omitempty"`
	Message   string    `json:"message,omitempty"`
	Title     string    `json:"title,omitempty"`
	MessageEn string    `json:"messageEn,omitempty"`
	MessageAr string    `json:"messageAr,omitempty"`
	Errors    ErrorList `json:"errors,omitempty"`
	Status    int       `json:"status,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
}

// ErrorList holds itemized error messages. It decodes either a list of strings
// or a map of field names to message lists.
type ErrorList []string

// UnmarshalJSON implements json.Unmarshaler.
func (e *ErrorList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*e = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*e = list
		return nil
	}

	var fields map[string][]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("errors must be a list or a map of lists: %w", err)
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, 0, len(fields))
	for _, name := range names {
		for _, msg := range fields[name] {
			out = append(out, name+": "+msg)
		}
	}
	*e = out
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a time value that accepts the formats produced by the backend.
// Values without a zone are read as UTC. Unknown formats decode as the zero time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Warn("Ignoring timestamp in an unknown format", log.String("value", raw))
	t.Time = time.Time{}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
