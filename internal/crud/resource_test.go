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

package crud

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
	"github.com/asgardeo/rosteradmin/tests/mocks/restmock"
)

type RESTResourceTestSuite struct {
	suite.Suite
	client *restmock.ClientInterfaceMock
	ctx    context.Context
}

func TestRESTResourceSuite(t *testing.T) {
	suite.Run(t, new(RESTResourceTestSuite))
}

func (suite *RESTResourceTestSuite) SetupTest() {
	suite.client = restmock.NewClientInterfaceMock(suite.T())
	suite.ctx = context.Background()
}

// respond decodes a JSON envelope into the out argument of the mocked call.
func respond(body string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		if err := json.Unmarshal([]byte(body), args.Get(2)); err != nil {
			panic(err)
		}
	}
}

func (suite *RESTResourceTestSuite) TestListRecomputesPagination() {
	resource := NewRESTResource[widget, widgetPayload](suite.client, Endpoint{Path: "Widgets"})
	filters := DefaultFilters().WithSearch("car").WithPage(3)
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodGet,
		Path:   "Widgets",
		Query:  filters.Values(OrderByStyle),
	}, mock.Anything).Run(respond(`{"success":true,"data":{"items":[{"id":21,"nameEnglish":"A"}],
		"totalCount":21,"page":3,"pageSize":10,"totalPages":99,"hasNext":true,"hasPrevious":false}}`)).Return(nil)

	result, err := resource.List(suite.ctx, filters)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Items, 1)
	assert.Equal(suite.T(), ID("21"), result.Items[0].ID)
	assert.Equal(suite.T(), NewPagination(21, 3, 10), result.Pagination)
	assert.False(suite.T(), result.Pagination.HasNextPage)
	assert.True(suite.T(), result.Pagination.HasPreviousPage)
}

func (suite *RESTResourceTestSuite) TestListEmptyResponse() {
	resource := NewRESTResource[widget, widgetPayload](suite.client, Endpoint{Path: "Widgets", QueryStyle: SortByStyle})
	filters := DefaultFilters().WithOrder("createdAt", true)
	suite.client.On("Do", suite.ctx, mock.MatchedBy(func(req rest.Request) bool {
		return req.Query.Get("sortBy") == "createdAt" && req.Query.Get("sortDirection") == "desc"
	}), mock.Anything).Run(respond(`{"success":true,"data":{"items":null,"totalCount":0}}`)).Return(nil)

	result, err := resource.List(suite.ctx, filters)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result.Items)
	assert.Empty(suite.T(), result.Items)
	assert.Equal(suite.T(), 1, result.Pagination.TotalPages)
	assert.Equal(suite.T(), 1, result.Pagination.Page)
	assert.Equal(suite.T(), 10, result.Pagination.PageSize)
}

func (suite *RESTResourceTestSuite) TestListPropagatesError() {
	resource := NewRESTResource[widget, widgetPayload](suite.client, Endpoint{Path: "Widgets"})
	info := serviceerror.NewErrorInfo(http.StatusForbidden)
	suite.client.On("Do", suite.ctx, mock.Anything, mock.Anything).Return(info)

	_, err := resource.List(suite.ctx, DefaultFilters())

	assert.Equal(suite.T(), info, err)
}

func (suite *RESTResourceTestSuite) TestGetUsesDetailQuery() {
	query := url.Values{"includeManager": []string{"true"}}
	resource := NewRESTResource[widget, widgetPayload](suite.client, Endpoint{Path: "Widgets", Query: query})
	suite.client.On("Do", suite.ctx, rest.Request{Method: http.MethodGet, Path: "Widgets/a%2Fb", Query: query},
		mock.Anything).Run(respond(`{"success":true,"data":{"id":"a/b","nameArabic":"س"}}`)).Return(nil)

	entity, err := resource.Get(suite.ctx, "a/b")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), ID("a/b"), entity.ID)
	assert.Equal(suite.T(), "س", entity.DisplayName(i18n.English))
}

func (suite *RESTResourceTestSuite) TestCreateAndUpdate() {
	resource := NewRESTResource[widget, widgetPayload](suite.client, Endpoint{Path: "Widgets"})
	payload := widgetPayload{NameEnglish: "New"}
	suite.client.On("Do", suite.ctx, rest.Request{Method: http.MethodPost, Path: "Widgets", Body: payload},
		mock.Anything).Run(respond(`{"success":true,"data":{"id":5,"nameEnglish":"New"},
		"messageEn":"Created","messageAr":"تم الإنشاء"}`)).Return(nil)
	suite.client.On("Do", suite.ctx, rest.Request{Method: http.MethodPut, Path: "Widgets/5", Body: payload},
		mock.Anything).Run(respond(`{"success":true,"data":{"id":5,"nameEnglish":"New"},
		"message":"Saved"}`)).Return(nil)

	created, err := resource.Create(suite.ctx, payload)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), ID("5"), created.Entity.ID)
	assert.Equal(suite.T(), i18n.NewText("Created", "تم الإنشاء"), created.Message)

	updated, err := resource.Update(suite.ctx, "5", payload)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), i18n.NewText("Saved", "Saved"), updated.Message)
}

func (suite *RESTResourceTestSuite) TestDeleteReasonInQuery() {
	resource := NewRESTResource[widget, widgetPayload](suite.client, Endpoint{Path: "Widgets"})
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodDelete,
		Path:   "Widgets/9",
		Query:  url.Values{"reason": []string{"merged"}},
	}, mock.Anything).Run(respond(`{"success":true,"data":true}`)).Return(nil)

	message, err := resource.Delete(suite.ctx, "9", "merged")

	require.NoError(suite.T(), err)
	assert.True(suite.T(), message.IsZero())
}

func (suite *RESTResourceTestSuite) TestDeleteReasonInBody() {
	resource := NewRESTResource[widget, widgetPayload](suite.client,
		Endpoint{Path: "Widgets", ReasonIn: ReasonInBody, ReasonParam: "deletionReason"})
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodDelete,
		Path:   "Widgets/9",
		Body:   map[string]string{"deletionReason": "merged"},
	}, mock.Anything).Run(respond(`{"success":true,"data":null,"messageEn":"Deleted"}`)).Return(nil)

	message, err := resource.Delete(suite.ctx, "9", "merged")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Deleted", message.In(i18n.Arabic))
}
