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

// Package utils provides small helpers shared across the client packages.
package utils

import (
	"errors"
	"net/url"
	"strings"
)

// JoinURL joins a base URL and a resource path, keeping a single slash between segments.
func JoinURL(base string, segments ...string) (string, error) {
	if strings.TrimSpace(base) == "" {
		return "", errors.New("base URL is empty")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", errors.New("base URL must be absolute")
	}

	parts := []string{strings.TrimRight(parsed.Path, "/")}
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}
	parsed.Path = strings.Join(parts, "/")
	if !strings.HasPrefix(parsed.Path, "/") {
		parsed.Path = "/" + parsed.Path
	}
	return parsed.String(), nil
}

// WithQuery appends the encoded query values to the URL. Empty values are left out.
func WithQuery(rawURL string, values url.Values) string {
	if len(values) == 0 {
		return rawURL
	}
	encoded := values.Encode()
	if encoded == "" {
		return rawURL
	}
	if strings.Contains(rawURL, "?") {
		return rawURL + "&" + encoded
	}
	return rawURL + "?" + encoded
}
