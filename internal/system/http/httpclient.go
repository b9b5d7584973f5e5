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

// Package http provides the HTTP client used for calls to the roster backend.
package http

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/constants"
)

// HTTPClientInterface defines the interface for HTTP client operations.
type HTTPClientInterface interface {
	// Do executes an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
	// CloseIdleConnections closes any idle keep-alive connections.
	CloseIdleConnections()
}

// HTTPClient implements HTTPClientInterface over a net/http client.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTPClient with the default request timeout.
func NewHTTPClient() HTTPClientInterface {
	return NewHTTPClientWithTimeout(constants.DefaultRequestTimeoutSeconds * time.Second)
}

// NewHTTPClientWithTimeout creates a new HTTPClient with a custom timeout.
func NewHTTPClientWithTimeout(timeout time.Duration) HTTPClientInterface {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewHTTPClientWithTLS creates a new HTTPClient that uses the given TLS configuration.
// A nil TLS configuration falls back to the system defaults.
func NewHTTPClientWithTLS(timeout time.Duration, tlsConfig *tls.Config) HTTPClientInterface {
	if tlsConfig == nil {
		return NewHTTPClientWithTimeout(timeout)
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig
	return &HTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// NewHTTPClientWithConfig creates a new HTTPClient around an existing client.
func NewHTTPClientWithConfig(client *http.Client) HTTPClientInterface {
	return &HTTPClient{
		client: client,
	}
}

// Do executes an HTTP request and returns an HTTP response.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// CloseIdleConnections closes any idle keep-alive connections.
func (c *HTTPClient) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}
