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

// Package serviceerror defines the error structures shared by the client layers.
package serviceerror

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

// ServiceErrorType defines the type of service error.
type ServiceErrorType string

const (
	// ClientErrorType denotes the client error type.
	ClientErrorType ServiceErrorType = "client_error"
	// ServerErrorType denotes the server error type.
	ServerErrorType ServiceErrorType = "server_error"
)

// ErrorKind is the user facing classification of an error.
type ErrorKind string

const (
	// KindValidation is a client side validation failure raised before submission.
	KindValidation ErrorKind = "validation"
	// KindNotFound is returned for HTTP 404.
	KindNotFound ErrorKind = "not_found"
	// KindForbidden is returned for HTTP 401 and 403.
	KindForbidden ErrorKind = "forbidden"
	// KindBadRequest is returned for HTTP 400, 409 and 422 and for envelopes reporting failure.
	KindBadRequest ErrorKind = "bad_request"
	// KindUnknown covers transport failures, unexpected shapes and any other status.
	KindUnknown ErrorKind = "unknown"
)

// ServiceError describes a client originated error condition.
type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

// ErrorInfo is the error value recorded for a failed operation.
type ErrorInfo struct {
	Code      string           `json:"code,omitempty"`
	Kind      ErrorKind        `json:"kind"`
	Type      ServiceErrorType `json:"type"`
	Status    int              `json:"status,omitempty"`
	Message   string           `json:"message,omitempty"`
	MessageEn string           `json:"messageEn,omitempty"`
	MessageAr string           `json:"messageAr,omitempty"`
	Errors    []string         `json:"errors,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// KindForStatus maps an HTTP status to an error kind.
func KindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindForbidden
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return KindBadRequest
	default:
		return KindUnknown
	}
}

// TypeForStatus maps an HTTP status to a service error type.
func TypeForStatus(status int) ServiceErrorType {
	if status >= 400 && status < 500 {
		return ClientErrorType
	}
	return ServerErrorType
}

// NewErrorInfo creates an ErrorInfo for the given HTTP status.
func NewErrorInfo(status int) *ErrorInfo {
	return &ErrorInfo{
		Kind:      KindForStatus(status),
		Type:      TypeForStatus(status),
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

// FromServiceError creates an ErrorInfo of the given kind from a service error descriptor.
// The description and cause are technical details kept in Errors, so no user facing message
// is set and callers apply their localized fallback.
func FromServiceError(se ServiceError, kind ErrorKind, cause error) *ErrorInfo {
	detail := se.ErrorDescription
	if cause != nil {
		detail = fmt.Sprintf("%s: %s", se.ErrorDescription, cause.Error())
	}
	return &ErrorInfo{
		Code:      se.Code,
		Kind:      kind,
		Type:      se.Type,
		Errors:    []string{detail},
		Timestamp: time.Now().UTC(),
	}
}

// Error implements the error interface.
func (e *ErrorInfo) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.MessageEn
	}
	if msg == "" {
		msg = e.MessageAr
	}
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%d %s", e.Status, msg)
	}
	if len(e.Errors) > 0 {
		msg = fmt.Sprintf("%s [%s]", msg, strings.Join(e.Errors, "; "))
	}
	return msg
}

// HasMessage reports whether any message variant is present.
func (e *ErrorInfo) HasMessage() bool {
	return e.Message != "" || e.MessageEn != "" || e.MessageAr != ""
}

// WithFallback fills the localized variants from the given text when no message is present.
func (e *ErrorInfo) WithFallback(text i18n.Text) *ErrorInfo {
	if !e.HasMessage() {
		e.MessageEn = text.En
		e.MessageAr = text.Ar
	}
	return e
}

// Localized selects the message for the locale: the locale variant, then the plain message,
// then the other locale variant and finally the supplied fallback.
func (e *ErrorInfo) Localized(l i18n.Locale, fallback i18n.Text) string {
	primary, secondary := e.MessageEn, e.MessageAr
	if l == i18n.Arabic {
		primary, secondary = e.MessageAr, e.MessageEn
	}
	switch {
	case primary != "":
		return primary
	case e.Message != "":
		return e.Message
	case secondary != "":
		return secondary
	default:
		return fallback.In(l)
	}
}

// Is reports whether the target is an ErrorInfo of the same kind.
func (e *ErrorInfo) Is(target error) bool {
	t, ok := target.(*ErrorInfo)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Status == 0 || t.Status == e.Status)
}

var (
	// ErrorTransport is raised when the backend could not be reached.
	ErrorTransport = ServiceError{
		Code:             "RAC-5001",
		Type:             ServerErrorType,
		Error:            "Transport failure",
		ErrorDescription: "Failed to reach the roster backend",
	}
	// ErrorUnexpectedResponse is raised when the backend response does not match the envelope.
	ErrorUnexpectedResponse = ServiceError{
		Code:             "RAC-5002",
		Type:             ServerErrorType,
		Error:            "Unexpected response",
		ErrorDescription: "The roster backend returned an unexpected response",
	}
	// ErrorEncodeRequest is raised when a request payload cannot be encoded.
	ErrorEncodeRequest = ServiceError{
		Code:             "RAC-1001",
		Type:             ClientErrorType,
		Error:            "Invalid request",
		ErrorDescription: "Failed to encode the request payload",
	}
	// ErrorValidation is raised when client side validation fails.
	ErrorValidation = ServiceError{
		Code:             "RAC-1002",
		Type:             ClientErrorType,
		Error:            "Validation failed",
		ErrorDescription: "One or more fields are invalid",
	}
)
