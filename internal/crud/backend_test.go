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

package crud_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/rosteradmin/internal/category"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/department"
	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	httpservice "github.com/asgardeo/rosteradmin/internal/system/http"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
	"github.com/asgardeo/rosteradmin/tests/mocks/backendmock"
)

type BackendTestSuite struct {
	suite.Suite
	backend *backendmock.Server
	client  *rest.Client
	ctx     context.Context
}

func TestBackendSuite(t *testing.T) {
	suite.Run(t, new(BackendTestSuite))
}

func (suite *BackendTestSuite) SetupTest() {
	suite.backend = backendmock.NewServer()
	suite.client = rest.NewClient(suite.backend.URL(), backendmock.APIPrefix, httpservice.NewHTTPClient(), nil)
	suite.ctx = context.Background()
	for i := 1; i <= 12; i++ {
		suite.backend.Seed("Departments", backendmock.Record{
			"id": i, "nameEnglish": "Department " + strconv.Itoa(i), "code": "D" + strconv.Itoa(i), "isActive": true,
		})
	}
}

func (suite *BackendTestSuite) TearDownTest() {
	suite.backend.Close()
}

func (suite *BackendTestSuite) TestListPagination() {
	module := department.Initialize(suite.client)

	result, err := module.Store.List(suite.ctx, department.Schema().Filters().WithPage(2))

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Items, 2)
	assert.Equal(suite.T(), 12, result.Pagination.TotalCount)
	assert.Equal(suite.T(), 2, result.Pagination.TotalPages)
	assert.False(suite.T(), result.Pagination.HasNextPage)
	assert.True(suite.T(), result.Pagination.HasPreviousPage)
}

func (suite *BackendTestSuite) TestLastIssuedListWins() {
	module := department.Initialize(suite.client)
	suite.backend.SetDelay(func(r *http.Request) time.Duration {
		if r.URL.Query().Get("search") == "slow" {
			return 300 * time.Millisecond
		}
		return 0
	})

	slow := make(chan error, 1)
	go func() {
		_, err := module.Store.List(suite.ctx, department.Schema().Filters().WithSearch("slow"))
		slow <- err
	}()
	require.Eventually(suite.T(), func() bool { return len(suite.backend.Requests()) == 1 },
		time.Second, 5*time.Millisecond)

	fast, err := module.Store.List(suite.ctx, department.Schema().Filters().WithSearch("Department 1"))
	require.NoError(suite.T(), err)

	assert.ErrorIs(suite.T(), <-slow, crud.ErrSuperseded)
	state := module.Store.Snapshot()
	assert.Equal(suite.T(), "Department 1", state.Filters.Search)
	assert.Equal(suite.T(), len(fast.Items), len(state.Items))
	assert.False(suite.T(), state.StatusOf(crud.OpList).Loading)
}

func (suite *BackendTestSuite) TestForbiddenListUsesFallbackMessage() {
	module := department.Initialize(suite.client)
	suite.backend.Fail(http.MethodGet, "Departments", http.StatusForbidden, "")

	_, err := module.Store.List(suite.ctx, department.Schema().Filters())

	var info *serviceerror.ErrorInfo
	require.ErrorAs(suite.T(), err, &info)
	assert.Equal(suite.T(), serviceerror.KindForbidden, info.Kind)
	state := module.Store.Snapshot()
	assert.Empty(suite.T(), state.Items)
	assert.Nil(suite.T(), state.Pagination)
	assert.True(suite.T(), state.StatusOf(crud.OpList).Error.HasMessage())
}

func (suite *BackendTestSuite) TestUnreachableBackendUsesLocalizedFallback() {
	client := rest.NewClient("http://127.0.0.1:1", backendmock.APIPrefix,
		httpservice.NewHTTPClientWithTimeout(time.Second), nil)
	module := department.Initialize(client)

	_, err := module.Store.List(suite.ctx, department.Schema().Filters())

	var info *serviceerror.ErrorInfo
	require.ErrorAs(suite.T(), err, &info)
	assert.Equal(suite.T(), serviceerror.KindUnknown, info.Kind)
	recorded := module.Store.Snapshot().StatusOf(crud.OpList).Error
	require.NotNil(suite.T(), recorded)
	fallback := department.Schema().Labels.FailureMessage(crud.OpList, 0)
	assert.Equal(suite.T(), fallback.Ar, recorded.Localized(i18n.Arabic, i18n.Text{}))
	assert.Equal(suite.T(), fallback.En, recorded.Localized(i18n.English, i18n.Text{}))
	require.NotEmpty(suite.T(), recorded.Errors)
	assert.Contains(suite.T(), recorded.Errors[0], "127.0.0.1:1")
}

func (suite *BackendTestSuite) TestDeleteWithReasonInBody() {
	suite.backend.Seed("Categories", backendmock.Record{"id": 4, "nameEnglish": "Residents", "isActive": true})
	module := category.Initialize(suite.client)

	require.NoError(suite.T(), module.Store.Delete(suite.ctx, "4", "merged into interns"))

	assert.Empty(suite.T(), suite.backend.Items("Categories"))
	requests := suite.backend.Requests()
	require.Len(suite.T(), requests, 1)
	assert.Equal(suite.T(), "merged into interns", requests[0].Body["reason"])
	assert.Equal(suite.T(), "Record deleted", module.Store.Status(crud.OpDelete).Message.En)
}

func (suite *BackendTestSuite) TestCreateThenUpdate() {
	module := department.Initialize(suite.client)

	created, err := module.Store.Create(suite.ctx, department.Payload{NameEnglish: "Oncology", NameArabic: "الأورام",
		Code: "ONC"})
	require.NoError(suite.T(), err)
	inactive := false
	updated, err := module.Store.Update(suite.ctx, created.ID, department.Payload{NameEnglish: "Oncology Unit",
		NameArabic: "الأورام", IsActive: &inactive})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), crud.ID("13"), created.ID)
	assert.Equal(suite.T(), "Oncology Unit", updated.NameEnglish)
	assert.Equal(suite.T(), "ONC", updated.Code)
	assert.False(suite.T(), updated.IsActive)
}
