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
	"net/url"
	"strconv"

	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// Name is the entity name used on the command line and in logs.
const Name = "department"

const includeManager = "includeManager"

var noManager = i18n.NewText("Not assigned", "غير معين")

// Schema returns the department schema.
func Schema() crud.Schema[Department, Payload] {
	defaults := crud.DefaultFilters().WithOrder("nameEnglish", false).WithInclude(includeManager, true)
	return crud.Schema[Department, Payload]{
		Name:     Name,
		Labels:   crud.Labels{Singular: i18n.NewText("Department", "القسم"), Plural: i18n.NewText("Departments", "الأقسام")},
		Resource: access.Departments,
		Endpoint: crud.Endpoint{
			Path:     "Departments",
			Query:    url.Values{includeManager: []string{"true"}},
			ReasonIn: crud.ReasonInQuery,
		},
		DefaultFilters: defaults,
		Columns: []crud.Column[Department]{
			{Header: i18n.NewText("Code", "الرمز"), Value: func(d Department, _ i18n.Locale) string { return d.Code }},
			{Header: i18n.NewText("Name", "الاسم"), Value: func(d Department, l i18n.Locale) string { return d.Name(l) }},
			{Header: i18n.NewText("Manager", "المدير"), Value: managerName},
			{Header: i18n.NewText("Status", "الحالة"), Value: func(d Department, l i18n.Locale) string {
				return crud.StatusLabel(d.IsActive).In(l)
			}},
		},
		Details: []crud.Column[Department]{
			{Header: i18n.NewText("ID", "المعرف"), Value: func(d Department, _ i18n.Locale) string { return d.ID.String() }},
			{Header: i18n.NewText("Code", "الرمز"), Value: func(d Department, _ i18n.Locale) string { return d.Code }},
			{Header: i18n.NewText("English name", "الاسم بالإنجليزية"),
				Value: func(d Department, _ i18n.Locale) string { return d.NameEnglish }},
			{Header: i18n.NewText("Arabic name", "الاسم بالعربية"),
				Value: func(d Department, _ i18n.Locale) string { return d.NameArabic }},
			{Header: i18n.NewText("Description", "الوصف"),
				Value: func(d Department, _ i18n.Locale) string { return d.Description }},
			{Header: i18n.NewText("Manager", "المدير"), Value: managerName},
			{Header: i18n.NewText("Doctors", "الأطباء"),
				Value: func(d Department, _ i18n.Locale) string { return strconv.Itoa(d.DoctorCount) }},
			{Header: i18n.NewText("Status", "الحالة"), Value: func(d Department, l i18n.Locale) string {
				return crud.StatusLabel(d.IsActive).In(l)
			}},
			{Header: i18n.NewText("Created by", "أنشئ بواسطة"),
				Value: func(d Department, _ i18n.Locale) string { return d.CreatedByName }},
		},
		Toolbar:    []crud.RowAction{crud.CreateAction(access.Departments)},
		RowActions: crud.StandardActions(access.Departments, true),
		Fields: []crud.FieldSpec{
			{Name: "nameEnglish", Label: i18n.NewText("English name", "الاسم بالإنجليزية"),
				Rules: "required,min=2,max=100"},
			{Name: "nameArabic", Label: i18n.NewText("Arabic name", "الاسم بالعربية"),
				Rules: "required,min=2,max=100"},
			{Name: "code", Label: i18n.NewText("Code", "الرمز"), Rules: "required,min=2,max=20", Immutable: true},
			{Name: "description", Label: i18n.NewText("Description", "الوصف"), Kind: crud.LongTextField,
				Rules: "max=500"},
			{Name: "isActive", Label: i18n.NewText("Active", "نشط"), Kind: crud.BoolField, EditOnly: true},
		},
		FromEntity: func(d Department) crud.Values {
			return crud.Values{
				"nameEnglish": d.NameEnglish,
				"nameArabic":  d.NameArabic,
				"code":        d.Code,
				"description": d.Description,
				"isActive":    crud.FormatBool(d.IsActive),
			}
		},
		BuildPayload: func(_ crud.FormMode, v crud.Values) (Payload, error) {
			return Payload{
				NameArabic:  v.String("nameArabic"),
				NameEnglish: v.String("nameEnglish"),
				Code:        v.String("code"),
				Description: v.String("description"),
				IsActive:    v.Bool("isActive"),
			}, nil
		},
		Updatable:    true,
		DeleteReason: crud.NewReasonRule(3),
	}
}

// Initialize creates the department module over the backend client.
func Initialize(client rest.ClientInterface) *crud.Module[Department, Payload] {
	return crud.NewRESTModule(Schema(), client)
}

func managerName(d Department, locale i18n.Locale) string {
	if d.Manager == nil {
		return noManager.In(locale)
	}
	return d.Manager.Name(locale)
}
