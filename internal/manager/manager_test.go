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

package manager

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

	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
	"github.com/asgardeo/rosteradmin/tests/mocks/restmock"
)

const assignmentJSON = `{"id":3,"departmentId":12,"departmentNameEnglish":"Cardiology","departmentNameArabic":"القلب",
	"userId":41,"fullNameEnglish":"Sara Ali","fullNameArabic":"سارة علي","assignedAt":"2025-03-01T08:00:00Z",
	"isActive":true}`

type ManagerTestSuite struct {
	suite.Suite
	client *restmock.ClientInterfaceMock
	module *crud.Module[Assignment, Payload]
	ctx    context.Context
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (suite *ManagerTestSuite) SetupTest() {
	i18n.SetCurrentLocale(i18n.English)
	suite.client = restmock.NewClientInterfaceMock(suite.T())
	suite.module = Initialize(suite.client)
	suite.ctx = context.Background()
}

func (suite *ManagerTestSuite) TestDecodeAssignment() {
	var a Assignment
	require.NoError(suite.T(), json.Unmarshal([]byte(assignmentJSON), &a))

	assert.Equal(suite.T(), crud.ID("3"), a.EntityID())
	assert.Equal(suite.T(), "سارة علي", a.DisplayName(i18n.Arabic))
	assert.Equal(suite.T(), [][2]string{{"Department", "Cardiology"}, {"Manager", "Sara Ali"},
		{"Assigned at", "2025-03-01"}}, Schema().DetailRows(a, i18n.English))
}

func (suite *ManagerTestSuite) TestAssign() {
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "DepartmentManagers",
		Body:   Payload{DepartmentID: 12, UserID: 41},
	}, mock.Anything).Run(func(args mock.Arguments) {
		require.NoError(suite.T(), json.Unmarshal([]byte(`{"success":true,"data":`+assignmentJSON+`}`), args.Get(2)))
	}).Return(nil)
	form := suite.module.NewCreateForm(crud.FormOptions[Assignment]{Done: func(Assignment) {}})
	require.NoError(suite.T(), form.Set("departmentId", "12"))
	require.NoError(suite.T(), form.Set("userId", "41"))

	assigned, err := form.Submit(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), crud.ID("41"), assigned.UserID)
}

func (suite *ManagerTestSuite) TestAssignmentsCannotBeEdited() {
	_, err := suite.module.NewEditForm(Assignment{ID: "3"}, crud.FormOptions[Assignment]{Done: func(Assignment) {}})

	assert.ErrorIs(suite.T(), err, crud.ErrUpdateNotSupported)
}

func (suite *ManagerTestSuite) TestRemoveReasonInQuery() {
	suite.client.On("Do", suite.ctx, rest.Request{
		Method: http.MethodDelete,
		Path:   "DepartmentManagers/3",
		Query:  url.Values{"reason": []string{"moved to surgery"}},
	}, mock.Anything).Return(nil)

	require.NoError(suite.T(), suite.module.Store.Delete(suite.ctx, "3", "moved to surgery"))
}

func (suite *ManagerTestSuite) TestRemoveRequiresRemovePermission() {
	controller := suite.module.NewListController(crud.ControllerOptions[Assignment]{
		Roles: access.StaticRole(access.DepartmentManager),
	})

	assert.ErrorIs(suite.T(), controller.RequestDelete("3"), crud.ErrActionNotPermitted)
}

func (suite *ManagerTestSuite) TestActions() {
	schema := Schema()

	require.Len(suite.T(), schema.Toolbar, 1)
	assert.Equal(suite.T(), access.Allow(access.DepartmentManagers, access.Assign), schema.Toolbar[0].Permission)
	assert.Equal(suite.T(), access.Allow(access.DepartmentManagers, access.Remove), schema.RowActions[1].Permission)
	assert.False(suite.T(), schema.Updatable)
}
