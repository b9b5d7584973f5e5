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

// Package rest provides the transport used to call the roster backend.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/constants"
	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	httpservice "github.com/asgardeo/rosteradmin/internal/system/http"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/log"
	"github.com/asgardeo/rosteradmin/internal/system/utils"
)

const loggerComponentName = "RestClient"

// maxBodySize bounds the response bodies read from the backend.
const maxBodySize = 10 << 20

// TokenSource provides the bearer token attached to backend requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// ClientInterface defines the transport operations used by entity resources.
type ClientInterface interface {
	Do(ctx context.Context, req Request, out interface{}) error
}

// Client calls the roster backend and decodes its response envelope.
type Client struct {
	baseURL    string
	apiPrefix  string
	httpClient httpservice.HTTPClientInterface
	tokens     TokenSource
}

// NewClient creates a new Client. A nil token source sends unauthenticated requests.
func NewClient(baseURL, apiPrefix string, httpClient httpservice.HTTPClientInterface,
	tokens TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		apiPrefix:  apiPrefix,
		httpClient: httpClient,
		tokens:     tokens,
	}
}

// Do sends the request and decodes a successful envelope into out, which should point to an Envelope.
// Failures are returned as *serviceerror.ErrorInfo, except context cancellation which is returned as is.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	requestID := utils.GenerateUUID()
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyRequestID, requestID))

	httpReq, err := c.newHTTPRequest(ctx, req, requestID)
	if err != nil {
		return err
	}

	logger.Debug("Sending request", log.String("method", httpReq.Method), log.String("url", httpReq.URL.String()))
	if logger.IsDebugEnabled() && req.Body != nil {
		if payload, err := json.Marshal(req.Body); err == nil {
			logger.Debug("Request payload", log.String("body", string(payload)))
		}
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logger.Error("Request to the roster backend failed", log.Error(err))
		return serviceerror.FromServiceError(serviceerror.ErrorTransport, serviceerror.KindUnknown, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Error closing response body", log.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return serviceerror.FromServiceError(serviceerror.ErrorTransport, serviceerror.KindUnknown, err)
	}
	logger.Debug("Received response", log.Int("status", resp.StatusCode), log.Int("bytes", len(body)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		info := errorInfoFromBody(resp.StatusCode, body)
		logger.Debug("Request rejected by the roster backend", log.Int("status", resp.StatusCode),
			log.String("kind", string(info.Kind)))
		return info
	}

	return decodeSuccess(resp.StatusCode, body, out, logger)
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	target, err := utils.JoinURL(c.baseURL, c.apiPrefix, req.Path)
	if err != nil {
		return nil, serviceerror.FromServiceError(serviceerror.ErrorEncodeRequest, serviceerror.KindUnknown, err)
	}
	target = utils.WithQuery(target, req.Query)

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, serviceerror.FromServiceError(serviceerror.ErrorEncodeRequest, serviceerror.KindUnknown, err)
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, serviceerror.FromServiceError(serviceerror.ErrorEncodeRequest, serviceerror.KindUnknown, err)
	}

	httpReq.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)
	httpReq.Header.Set(constants.AcceptLanguageHeaderName, i18n.CurrentLocale().String())
	httpReq.Header.Set(constants.RequestIDHeaderName, requestID)
	if body != nil {
		httpReq.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			info := serviceerror.FromServiceError(ErrorNotSignedIn, serviceerror.KindForbidden, nil)
			info.MessageEn = "You are not signed in. Please sign in and try again."
			info.MessageAr = "لم تقم بتسجيل الدخول. يرجى تسجيل الدخول والمحاولة مرة أخرى."
			return nil, info
		}
		httpReq.Header.Set(constants.AuthorizationHeaderName, constants.TokenTypeBearer+" "+token)
	}
	return httpReq, nil
}

// errorInfoFromBody builds the error of a non 2xx response.
func errorInfoFromBody(status int, body []byte) *serviceerror.ErrorInfo {
	info := serviceerror.NewErrorInfo(status)

	var payload ErrorPayload
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &payload) != nil {
		return info
	}
	info.Message = payload.Message
	if info.Message == "" {
		info.Message = payload.Title
	}
	info.MessageEn = payload.MessageEn
	info.MessageAr = payload.MessageAr
	info.Errors = payload.Errors
	if !payload.Timestamp.IsZero() {
		info.Timestamp = payload.Timestamp.Time
	}
	return info
}

func decodeSuccess(status int, body []byte, out interface{}, logger *log.Logger) error {
	if status == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	violations, err := validateEnvelope(body)
	if err != nil {
		logger.Warn("Response body is not valid JSON", log.Error(err))
		return unexpected(status, err)
	}
	if len(violations) > 0 {
		logger.Warn("Response does not match the envelope", log.Any("violations", violations))
		info := serviceerror.FromServiceError(serviceerror.ErrorUnexpectedResponse, serviceerror.KindUnknown, nil)
		info.Status = status
		info.Errors = violations
		return info
	}

	var header ErrorPayload
	if err := json.Unmarshal(body, &header); err != nil {
		return unexpected(status, err)
	}
	if header.Success != nil && !*header.Success {
		info := &serviceerror.ErrorInfo{
			Kind:      serviceerror.KindBadRequest,
			Type:      serviceerror.ClientErrorType,
			Message:   header.Message,
			MessageEn: header.MessageEn,
			MessageAr: header.MessageAr,
			Errors:    header.Errors,
			Timestamp: header.Timestamp.Time,
		}
		if info.Timestamp.IsZero() {
			info.Timestamp = time.Now().UTC()
		}
		return info
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return unexpected(status, err)
	}
	return nil
}

func unexpected(status int, err error) *serviceerror.ErrorInfo {
	info := serviceerror.FromServiceError(serviceerror.ErrorUnexpectedResponse, serviceerror.KindUnknown, err)
	info.Status = status
	return info
}

// IsCanceled reports whether the error is a context cancellation or deadline.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ErrorNotSignedIn is raised when no usable session token is available.
var ErrorNotSignedIn = serviceerror.ServiceError{
	Code:             "RAC-1003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Not signed in",
	ErrorDescription: "No valid session token is available",
}
