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

package doctor

import (
	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/lookup"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// Name is the entity name used on the command line and in logs.
const Name = "doctor"

var updateReason = crud.ReasonRule{Min: 10, Max: 500}

// Schema returns the doctor schema.
func Schema() crud.Schema[Doctor, Payload] {
	return crud.Schema[Doctor, Payload]{
		Name:     Name,
		Labels:   crud.Labels{Singular: i18n.NewText("Doctor", "الطبيب"), Plural: i18n.NewText("Doctors", "الأطباء")},
		Resource: access.Doctors,
		Endpoint: crud.Endpoint{
			Path:       "Doctors",
			QueryStyle: crud.SortByStyle,
			ReasonIn:   crud.ReasonInBody,
		},
		DefaultFilters: crud.DefaultFilters().WithOrder("createdAt", true),
		Columns: []crud.Column[Doctor]{
			{Header: i18n.NewText("Name", "الاسم"), Value: Doctor.DisplayName},
			{Header: i18n.NewText("Email", "البريد الإلكتروني"), Value: func(d Doctor, _ i18n.Locale) string { return d.Email }},
			{Header: i18n.NewText("Department", "القسم"), Value: Doctor.Department},
			{Header: i18n.NewText("Category", "الفئة"), Value: Doctor.Category},
			{Header: i18n.NewText("Status", "الحالة"), Value: func(d Doctor, l i18n.Locale) string {
				return crud.StatusLabel(d.IsActive).In(l)
			}},
		},
		Details: []crud.Column[Doctor]{
			{Header: i18n.NewText("ID", "المعرف"), Value: func(d Doctor, _ i18n.Locale) string { return d.ID.String() }},
			{Header: i18n.NewText("English name", "الاسم بالإنجليزية"),
				Value: func(d Doctor, _ i18n.Locale) string { return d.FullNameEnglish }},
			{Header: i18n.NewText("Arabic name", "الاسم بالعربية"),
				Value: func(d Doctor, _ i18n.Locale) string { return d.FullNameArabic }},
			{Header: i18n.NewText("Email", "البريد الإلكتروني"), Value: func(d Doctor, _ i18n.Locale) string { return d.Email }},
			{Header: i18n.NewText("Phone", "الهاتف"), Value: func(d Doctor, _ i18n.Locale) string { return d.PhoneNumber }},
			{Header: i18n.NewText("Department", "القسم"), Value: Doctor.Department},
			{Header: i18n.NewText("Category", "الفئة"), Value: Doctor.Category},
			{Header: i18n.NewText("Scientific degree", "الدرجة العلمية"), Value: Doctor.ScientificDegree},
			{Header: i18n.NewText("Status", "الحالة"), Value: func(d Doctor, l i18n.Locale) string {
				return crud.StatusLabel(d.IsActive).In(l)
			}},
		},
		Toolbar:    []crud.RowAction{crud.CreateAction(access.Doctors)},
		RowActions: crud.StandardActions(access.Doctors, true),
		Fields: []crud.FieldSpec{
			{Name: "fullNameEnglish", Label: i18n.NewText("English name", "الاسم بالإنجليزية"),
				Rules: "required,min=3,max=200"},
			{Name: "fullNameArabic", Label: i18n.NewText("Arabic name", "الاسم بالعربية"),
				Rules: "required,min=3,max=200"},
			{Name: "email", Label: i18n.NewText("Email", "البريد الإلكتروني"), Kind: crud.EmailField,
				Rules: "required,email,max=256", Immutable: true},
			{Name: "phoneNumber", Label: i18n.NewText("Phone", "الهاتف"), Rules: "max=20"},
			{Name: "departmentId", Label: i18n.NewText("Department", "القسم"), Kind: crud.ReferenceField,
				Rules: "required,gt=0", Lookup: lookup.Departments},
			{Name: "categoryId", Label: i18n.NewText("Category", "الفئة"), Kind: crud.ReferenceField,
				Rules: "required,gt=0", Lookup: lookup.Categories},
			{Name: "scientificDegreeId", Label: i18n.NewText("Scientific degree", "الدرجة العلمية"),
				Kind: crud.ReferenceField, Rules: "required,gt=0", Lookup: lookup.ScientificDegrees},
			{Name: "isActive", Label: i18n.NewText("Active", "نشط"), Kind: crud.BoolField, EditOnly: true},
			{Name: "updateReason", Label: i18n.NewText("Reason for update", "سبب التحديث"),
				Kind: crud.LongTextField, EditOnly: true, Reason: &updateReason},
		},
		FromEntity: func(d Doctor) crud.Values {
			return crud.Values{
				"fullNameEnglish":    d.FullNameEnglish,
				"fullNameArabic":     d.FullNameArabic,
				"email":              d.Email,
				"phoneNumber":        d.PhoneNumber,
				"departmentId":       d.DepartmentID.String(),
				"categoryId":         d.CategoryID.String(),
				"scientificDegreeId": d.ScientificDegreeID.String(),
				"isActive":           crud.FormatBool(d.IsActive),
			}
		},
		BuildPayload: buildPayload,
		Updatable:    true,
		DeleteReason: crud.NewReasonRule(10),
	}
}

func buildPayload(mode crud.FormMode, v crud.Values) (Payload, error) {
	p := Payload{
		FullNameEnglish:    v.String("fullNameEnglish"),
		FullNameArabic:     v.String("fullNameArabic"),
		Email:              v.String("email"),
		PhoneNumber:        v.String("phoneNumber"),
		DepartmentID:       v.Int("departmentId"),
		CategoryID:         v.Int("categoryId"),
		ScientificDegreeID: v.Int("scientificDegreeId"),
	}
	if mode == crud.EditMode {
		p.IsActive = v.Bool("isActive")
		p.UpdateReason = v.String("updateReason")
	}
	return p, nil
}

// Initialize creates the doctor module over the backend client.
func Initialize(client rest.ClientInterface) *crud.Module[Doctor, Payload] {
	return crud.NewRESTModule(Schema(), client)
}
