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

package rest_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	httpservice "github.com/asgardeo/rosteradmin/internal/system/http"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
	"github.com/asgardeo/rosteradmin/tests/mocks/restmock"
)

type testItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type RestClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	tokens  *restmock.TokenSourceMock
	client  *rest.Client
}

func TestRestClientSuite(t *testing.T) {
	suite.Run(t, new(RestClientTestSuite))
}

func (suite *RestClientTestSuite) SetupTest() {
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.handler(w, r)
	}))
	suite.tokens = restmock.NewTokenSourceMock(suite.T())
	suite.client = rest.NewClient(suite.server.URL, "/api", httpservice.NewHTTPClient(), suite.tokens)
}

func (suite *RestClientTestSuite) TearDownTest() {
	suite.server.Close()
	i18n.SetCurrentLocale(i18n.English)
}

func (suite *RestClientTestSuite) respond(status int, body string) {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (suite *RestClientTestSuite) TestListRequest() {
	suite.tokens.On("Token", mock.Anything).Return("token-123", nil)
	i18n.SetCurrentLocale(i18n.Arabic)

	var captured *http.Request
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		captured = r
		_, _ = io.WriteString(w, `{"success":true,"data":{"items":[{"id":1,"name":"A"},{"id":2,"name":"B"}],`+
			`"totalCount":12,"page":1,"pageSize":2,"totalPages":6,"hasNext":true,"hasPrevious":false},`+
			`"messageEn":"ok","messageAr":"تم","timestamp":"2025-03-01T10:00:00Z"}`)
	}

	var out rest.Envelope[rest.ListData[testItem]]
	err := suite.client.Do(context.Background(), rest.Request{
		Path:  "Departments",
		Query: url.Values{"page": {"1"}, "search": {"card"}},
	}, &out)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), captured)
	assert.Equal(suite.T(), http.MethodGet, captured.Method)
	assert.Equal(suite.T(), "/api/Departments", captured.URL.Path)
	assert.Equal(suite.T(), "card", captured.URL.Query().Get("search"))
	assert.Equal(suite.T(), "Bearer token-123", captured.Header.Get("Authorization"))
	assert.Equal(suite.T(), "ar", captured.Header.Get("Accept-Language"))
	assert.Len(suite.T(), captured.Header.Get("X-Request-ID"), 36)
	assert.Empty(suite.T(), captured.Header.Get("Content-Type"))

	assert.True(suite.T(), out.Success)
	assert.Len(suite.T(), out.Data.Items, 2)
	assert.Equal(suite.T(), 12, out.Data.TotalCount)
	assert.Equal(suite.T(), "تم", out.MessageAr)
	assert.Equal(suite.T(), 2025, out.Timestamp.Year())
}

func (suite *RestClientTestSuite) TestBodyIsEncoded() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)

	var body []byte
	var contentType string
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":7,"name":"New"}}`)
	}

	var out rest.Envelope[testItem]
	err := suite.client.Do(context.Background(), rest.Request{
		Method: http.MethodPost,
		Path:   "/Departments/",
		Body:   map[string]string{"name": "New"},
	}, &out)

	require.NoError(suite.T(), err)
	assert.JSONEq(suite.T(), `{"name":"New"}`, string(body))
	assert.Equal(suite.T(), "application/json", contentType)
	assert.Equal(suite.T(), 7, out.Data.ID)
}

func (suite *RestClientTestSuite) TestNotFoundWithLocalizedMessages() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusNotFound, `{"success":false,"messageEn":"Department not found",`+
		`"messageAr":"القسم غير موجود","errors":["id 42"],"timestamp":"2025-03-01T10:00:00.1234567"}`)

	err := suite.client.Do(context.Background(), rest.Request{Path: "Departments/42"}, &rest.Envelope[testItem]{})

	var info *serviceerror.ErrorInfo
	require.True(suite.T(), errors.As(err, &info))
	assert.Equal(suite.T(), serviceerror.KindNotFound, info.Kind)
	assert.Equal(suite.T(), http.StatusNotFound, info.Status)
	assert.Equal(suite.T(), "Department not found", info.MessageEn)
	assert.Equal(suite.T(), "القسم غير موجود", info.MessageAr)
	assert.Equal(suite.T(), []string{"id 42"}, info.Errors)
	assert.Equal(suite.T(), 2025, info.Timestamp.Year())
}

func (suite *RestClientTestSuite) TestUnknownTimestampFormatKeepsResponse() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusOK, `{"success":true,"timestamp":"1 March 2025","data":{"id":3,"name":"Cardiology"}}`)

	var out rest.Envelope[testItem]
	err := suite.client.Do(context.Background(), rest.Request{Path: "Departments/3"}, &out)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, out.Data.ID)
	assert.True(suite.T(), out.Timestamp.IsZero())
}

func (suite *RestClientTestSuite) TestUnknownTimestampFormatKeepsErrorMessages() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusConflict, `{"success":false,"messageEn":"Code already used",`+
		`"messageAr":"الرمز مستخدم","timestamp":"01/03/2025 10:00"}`)

	err := suite.client.Do(context.Background(), rest.Request{Path: "Departments"}, &rest.Envelope[testItem]{})

	var info *serviceerror.ErrorInfo
	require.True(suite.T(), errors.As(err, &info))
	assert.Equal(suite.T(), serviceerror.KindBadRequest, info.Kind)
	assert.Equal(suite.T(), "Code already used", info.MessageEn)
	assert.Equal(suite.T(), "الرمز مستخدم", info.MessageAr)
	assert.False(suite.T(), info.Timestamp.IsZero())
}

func (suite *RestClientTestSuite) TestValidationProblemDetails() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusBadRequest, `{"title":"One or more validation errors occurred.",`+
		`"status":400,"errors":{"Reason":["The reason field is required."],"Code":["Too long"]}}`)

	err := suite.client.Do(context.Background(), rest.Request{Method: http.MethodDelete, Path: "Departments/3"}, nil)

	var info *serviceerror.ErrorInfo
	require.True(suite.T(), errors.As(err, &info))
	assert.Equal(suite.T(), serviceerror.KindBadRequest, info.Kind)
	assert.Equal(suite.T(), "One or more validation errors occurred.", info.Message)
	assert.Equal(suite.T(), []string{"Code: Too long", "Reason: The reason field is required."}, info.Errors)
}

func (suite *RestClientTestSuite) TestServerErrorWithoutJSON() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusBadGateway, `<html>bad gateway</html>`)

	err := suite.client.Do(context.Background(), rest.Request{Path: "Doctors"}, nil)

	var info *serviceerror.ErrorInfo
	require.True(suite.T(), errors.As(err, &info))
	assert.Equal(suite.T(), serviceerror.KindUnknown, info.Kind)
	assert.Equal(suite.T(), serviceerror.ServerErrorType, info.Type)
	assert.False(suite.T(), info.HasMessage())
}

func (suite *RestClientTestSuite) TestForbidden() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusForbidden, ``)

	err := suite.client.Do(context.Background(), rest.Request{Path: "Categories"}, nil)

	assert.ErrorIs(suite.T(), err, &serviceerror.ErrorInfo{Kind: serviceerror.KindForbidden})
}

func (suite *RestClientTestSuite) TestEnvelopeReportingFailure() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusOK, `{"success":false,"message":"Code already exists","data":null}`)

	err := suite.client.Do(context.Background(), rest.Request{Method: http.MethodPost, Path: "Departments"},
		&rest.Envelope[testItem]{})

	var info *serviceerror.ErrorInfo
	require.True(suite.T(), errors.As(err, &info))
	assert.Equal(suite.T(), serviceerror.KindBadRequest, info.Kind)
	assert.Equal(suite.T(), "Code already exists", info.Message)
	assert.Equal(suite.T(), 0, info.Status)
}

func (suite *RestClientTestSuite) TestUnexpectedShape() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusOK, `[{"id":1}]`)

	err := suite.client.Do(context.Background(), rest.Request{Path: "Departments"}, &rest.Envelope[testItem]{})

	var info *serviceerror.ErrorInfo
	require.True(suite.T(), errors.As(err, &info))
	assert.Equal(suite.T(), serviceerror.KindUnknown, info.Kind)
	assert.Equal(suite.T(), serviceerror.ErrorUnexpectedResponse.Code, info.Code)
	assert.NotEmpty(suite.T(), info.Errors)
}

func (suite *RestClientTestSuite) TestMissingSuccessFlag() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusOK, `{"data":{"id":1}}`)

	err := suite.client.Do(context.Background(), rest.Request{Path: "Departments/1"}, &rest.Envelope[testItem]{})

	assert.ErrorIs(suite.T(), err, &serviceerror.ErrorInfo{Kind: serviceerror.KindUnknown})
}

func (suite *RestClientTestSuite) TestNoContent() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	suite.respond(http.StatusNoContent, ``)

	err := suite.client.Do(context.Background(), rest.Request{Method: http.MethodDelete, Path: "Departments/1"},
		&rest.Envelope[struct{}]{})

	assert.NoError(suite.T(), err)
}

func (suite *RestClientTestSuite) TestNoSession() {
	suite.tokens.On("Token", mock.Anything).Return("", errors.New("no session"))
	called := false
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		called = true
	}

	err := suite.client.Do(context.Background(), rest.Request{Path: "Departments"}, nil)

	var info *serviceerror.ErrorInfo
	require.True(suite.T(), errors.As(err, &info))
	assert.Equal(suite.T(), serviceerror.KindForbidden, info.Kind)
	assert.Equal(suite.T(), rest.ErrorNotSignedIn.Code, info.Code)
	assert.False(suite.T(), called)
}

func (suite *RestClientTestSuite) TestUnauthenticatedClient() {
	client := rest.NewClient(suite.server.URL, "/api", httpservice.NewHTTPClient(), nil)
	var auth string
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"success":true}`)
	}

	err := client.Do(context.Background(), rest.Request{Path: "Departments"}, nil)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), auth)
}

func (suite *RestClientTestSuite) TestContextCanceled() {
	suite.tokens.On("Token", mock.Anything).Return("t", nil)
	release := make(chan struct{})
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := suite.client.Do(ctx, rest.Request{Path: "Departments"}, nil)

	assert.ErrorIs(suite.T(), err, context.Canceled)
	assert.True(suite.T(), rest.IsCanceled(err))
}

func (suite *RestClientTestSuite) TestTransportFailure() {
	client := rest.NewClient("http://127.0.0.1:1", "/api", httpservice.NewHTTPClientWithTimeout(time.Second), nil)

	err := client.Do(context.Background(), rest.Request{Path: "Departments"}, nil)

	var info *serviceerror.ErrorInfo
	require.True(suite.T(), errors.As(err, &info))
	assert.Equal(suite.T(), serviceerror.KindUnknown, info.Kind)
	assert.Equal(suite.T(), serviceerror.ErrorTransport.Code, info.Code)
}

func (suite *RestClientTestSuite) TestInvalidBaseURL() {
	client := rest.NewClient("", "/api", httpservice.NewHTTPClient(), nil)

	err := client.Do(context.Background(), rest.Request{Path: "Departments"}, nil)

	assert.ErrorIs(suite.T(), err, &serviceerror.ErrorInfo{Kind: serviceerror.KindUnknown})
}
