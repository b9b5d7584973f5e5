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

package department

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

	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
	"github.com/asgardeo/rosteradmin/tests/mocks/restmock"
)

const departmentJSON = `{"id":12,"nameArabic":"القلب","nameEnglish":"Cardiology","code":"CARD",
	"description":"Heart unit","isActive":true,"doctorCount":4,
	"manager":{"id":3,"userId":41,"fullNameEnglish":"Sara Ali","fullNameArabic":"سارة علي",
	"assignedAt":"2025-03-01T08:00:00Z"},
	"createdAt":"2025-01-01T10:00:00Z","createdByName":"admin","updatedAt":null}`

type DepartmentTestSuite struct {
	suite.Suite
	client *restmock.ClientInterfaceMock
	module *crud.Module[Department, Payload]
	ctx    context.Context
}

func TestDepartmentSuite(t *testing.T) {
	suite.Run(t, new(DepartmentTestSuite))
}

func (suite *DepartmentTestSuite) SetupTest() {
	i18n.SetCurrentLocale(i18n.English)
	suite.client = restmock.NewClientInterfaceMock(suite.T())
	suite.module = Initialize(suite.client)
	suite.ctx = context.Background()
}

func decodeInto(body string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		if err := json.Unmarshal([]byte(body), args.Get(2)); err != nil {
			panic(err)
		}
	}
}

func (suite *DepartmentTestSuite) TestDecodeDepartment() {
	var d Department
	require.NoError(suite.T(), json.Unmarshal([]byte(departmentJSON), &d))

	assert.Equal(suite.T(), crud.ID("12"), d.EntityID())
	assert.Equal(suite.T(), "القلب", d.DisplayName(i18n.Arabic))
	require.NotNil(suite.T(), d.Manager)
	assert.Equal(suite.T(), "سارة علي", d.Manager.Name(i18n.Arabic))
	assert.Equal(suite.T(), "admin", d.CreatedByName)
	assert.Equal(suite.T(), 4, d.DoctorCount)
}

func (suite *DepartmentTestSuite) TestColumns() {
	var d Department
	require.NoError(suite.T(), json.Unmarshal([]byte(departmentJSON), &d))
	d.Manager = nil

	rows := Schema().DetailRows(d, i18n.English)

	assert.Contains(suite.T(), rows, [2]string{"Manager", "Not assigned"})
	assert.Contains(suite.T(), rows, [2]string{"Status", "Active"})
	assert.Contains(suite.T(), rows, [2]string{"Doctors", "4"})
}

func (suite *DepartmentTestSuite) TestDefaultFiltersIncludeManager() {
	values := Schema().Filters().Values(crud.OrderByStyle)

	assert.Equal(suite.T(), "true", values.Get("includeManager"))
	assert.Equal(suite.T(), "nameEnglish", values.Get("orderBy"))
	assert.Equal(suite.T(), "false", values.Get("orderDesc"))
	assert.Equal(suite.T(), "10", values.Get("pageSize"))
}

func (suite *DepartmentTestSuite) TestCreateSendsPayload() {
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "Departments",
		Body:   Payload{NameArabic: "القلب", NameEnglish: "Cardiology", Code: "CARD", Description: "Heart"},
	}, mock.Anything).Run(decodeInto(`{"success":true,"data":` + departmentJSON + `}`)).Return(nil)
	var done []Department
	form := suite.module.NewCreateForm(crud.FormOptions[Department]{
		Done: func(d Department) { done = append(done, d) },
	})
	require.NoError(suite.T(), form.Set("nameEnglish", "Cardiology"))
	require.NoError(suite.T(), form.Set("nameArabic", "القلب"))
	require.NoError(suite.T(), form.Set("code", "CARD"))
	require.NoError(suite.T(), form.Set("description", "Heart"))

	created, err := form.Submit(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "CARD", created.Code)
	assert.Len(suite.T(), done, 1)
}

func (suite *DepartmentTestSuite) TestEditExcludesCode() {
	var d Department
	require.NoError(suite.T(), json.Unmarshal([]byte(departmentJSON), &d))
	inactive := false
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodPut,
		Path:   "Departments/12",
		Body: Payload{NameArabic: "القلب", NameEnglish: "Cardiology", Description: "Heart unit",
			IsActive: &inactive},
	}, mock.Anything).Run(decodeInto(`{"success":true,"data":` + departmentJSON + `}`)).Return(nil)
	form, err := suite.module.NewEditForm(d, crud.FormOptions[Department]{Done: func(Department) {}})
	require.NoError(suite.T(), err)

	assert.ErrorIs(suite.T(), form.Set("code", "X"), crud.ErrImmutableField)
	require.NoError(suite.T(), form.Set("isActive", "false"))
	_, err = form.Submit(suite.ctx)

	require.NoError(suite.T(), err)
}

func (suite *DepartmentTestSuite) TestDeleteSendsReasonInQuery() {
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodDelete,
		Path:   "Departments/12",
		Query:  url.Values{"reason": []string{"merged"}},
	}, mock.Anything).Run(decodeInto(`{"success":true,"data":true}`)).Return(nil)

	require.NoError(suite.T(), suite.module.Store.Delete(suite.ctx, "12", "merged"))
}

func (suite *DepartmentTestSuite) TestDeleteReasonMinimum() {
	rule := Schema().DeleteReason

	assert.NotNil(suite.T(), rule.Validate("reason", "ab"))
	assert.Nil(suite.T(), rule.Validate("reason", "abc"))
}

func (suite *DepartmentTestSuite) TestGetIncludesManager() {
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodGet,
		Path:   "Departments/12",
		Query:  url.Values{"includeManager": []string{"true"}},
	}, mock.Anything).Run(decodeInto(`{"success":true,"data":` + departmentJSON + `}`)).Return(nil)

	d, err := suite.module.Store.Get(suite.ctx, "12")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sara Ali", d.Manager.Name(i18n.English))
}
