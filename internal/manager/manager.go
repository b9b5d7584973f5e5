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

// Package manager assigns doctors as department managers and removes those assignments.
package manager

import (
	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/lookup"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// Name is the entity name used on the command line and in logs.
const Name = "manager"

// Assignment links a user to the department they manage.
type Assignment struct {
	ID                    crud.ID        `json:"id"`
	DepartmentID          crud.ID        `json:"departmentId"`
	DepartmentNameEnglish string         `json:"departmentNameEnglish,omitempty"`
	DepartmentNameArabic  string         `json:"departmentNameArabic,omitempty"`
	UserID                crud.ID        `json:"userId"`
	FullNameEnglish       string         `json:"fullNameEnglish"`
	FullNameArabic        string         `json:"fullNameArabic"`
	Email                 string         `json:"email,omitempty"`
	AssignedAt            rest.Timestamp `json:"assignedAt"`
	IsActive              bool           `json:"isActive"`
}

// EntityID implements crud.Entity.
func (a Assignment) EntityID() crud.ID {
	return a.ID
}

// DisplayName implements crud.Entity.
func (a Assignment) DisplayName(locale i18n.Locale) string {
	return i18n.NewText(a.FullNameEnglish, a.FullNameArabic).In(locale)
}

// Department returns the department name for the locale.
func (a Assignment) Department(locale i18n.Locale) string {
	return i18n.NewText(a.DepartmentNameEnglish, a.DepartmentNameArabic).In(locale)
}

// Payload is the assign request body.
type Payload struct {
	DepartmentID int64 `json:"departmentId"`
	UserID       int64 `json:"userId"`
}

// Schema returns the department manager schema.
func Schema() crud.Schema[Assignment, Payload] {
	return crud.Schema[Assignment, Payload]{
		Name: Name,
		Labels: crud.Labels{
			Singular: i18n.NewText("Department manager", "مدير القسم"),
			Plural:   i18n.NewText("Department managers", "مديرو الأقسام"),
		},
		Resource:       access.DepartmentManagers,
		Endpoint:       crud.Endpoint{Path: "DepartmentManagers", ReasonIn: crud.ReasonInQuery},
		DefaultFilters: crud.DefaultFilters(),
		Columns: []crud.Column[Assignment]{
			{Header: i18n.NewText("Department", "القسم"), Value: Assignment.Department},
			{Header: i18n.NewText("Manager", "المدير"), Value: Assignment.DisplayName},
			{Header: i18n.NewText("Assigned at", "تاريخ التعيين"), Value: func(a Assignment, _ i18n.Locale) string {
				return formatAssigned(a.AssignedAt)
			}},
		},
		Toolbar:    []crud.RowAction{crud.AssignAction(access.DepartmentManagers)},
		RowActions: crud.AssignmentActions(access.DepartmentManagers),
		Fields: []crud.FieldSpec{
			{Name: "departmentId", Label: i18n.NewText("Department", "القسم"), Kind: crud.ReferenceField,
				Rules: "required,gt=0", Lookup: lookup.Departments},
			{Name: "userId", Label: i18n.NewText("Doctor", "الطبيب"), Kind: crud.ReferenceField,
				Rules: "required,gt=0", Lookup: lookup.Doctors},
		},
		BuildPayload: func(_ crud.FormMode, v crud.Values) (Payload, error) {
			return Payload{DepartmentID: v.Int("departmentId"), UserID: v.Int("userId")}, nil
		},
		DeleteReason: crud.NewReasonRule(10),
		DeleteAction: access.Remove,
	}
}

func formatAssigned(t rest.Timestamp) string {
	if t.Time.IsZero() {
		return ""
	}
	return t.Time.Format("2006-01-02")
}

// Initialize creates the department manager module over the backend client.
func Initialize(client rest.ClientInterface) *crud.Module[Assignment, Payload] {
	return crud.NewRESTModule(Schema(), client)
}
