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

// Package constants defines global constants used across the system module.
package constants

const (
	// LogLevelEnvironmentVariable is the environment variable name for the log level.
	LogLevelEnvironmentVariable = "LOG_LEVEL"
	// DefaultLogLevel is the default log level used if not specified.
	DefaultLogLevel = "info"
)

// AuthorizationHeaderName is the name of the authorization header used in HTTP requests.
const AuthorizationHeaderName = "Authorization"

// AcceptHeaderName is the name of the accept header used in HTTP requests.
const AcceptHeaderName = "Accept"

// AcceptLanguageHeaderName is the name of the accept language header used in HTTP requests.
const AcceptLanguageHeaderName = "Accept-Language"

// ContentTypeHeaderName is the name of the content type header used in HTTP requests.
const ContentTypeHeaderName = "Content-Type"

// RequestIDHeaderName carries the correlation ID of an outbound request.
const RequestIDHeaderName = "X-Request-ID"

// TokenTypeBearer is the token type used in bearer authentication.
const TokenTypeBearer = "Bearer"

// ContentTypeJSON is the content type for JSON data.
const ContentTypeJSON = "application/json"

// DefaultPageSize is the default page size of list surfaces when an entity does not define one.
const DefaultPageSize = 10

// MaxPageSize is the maximum page size a list surface may request.
const MaxPageSize = 100

// DefaultSearchDebounceMillis is the default quiet period before a search input is committed.
const DefaultSearchDebounceMillis = 500

// DefaultRequestTimeoutSeconds is the default timeout for backend requests.
const DefaultRequestTimeoutSeconds = 30

// MaxReasonLength is the upper bound applied to every justification field.
const MaxReasonLength = 500
