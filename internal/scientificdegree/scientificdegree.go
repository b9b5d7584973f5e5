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

// Package scientificdegree manages the academic degrees that can be held by doctors.
package scientificdegree

import (
	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// Name is the entity name used on the command line and in logs.
const Name = "scientificdegree"

// ScientificDegree is an academic degree such as a fellowship or a master's degree.
type ScientificDegree struct {
	ID crud.ID `json:"id"`
	crud.BilingualName
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	crud.Audit
}

// EntityID implements crud.Entity.
func (s ScientificDegree) EntityID() crud.ID {
	return s.ID
}

// DisplayName implements crud.Entity.
func (s ScientificDegree) DisplayName(locale i18n.Locale) string {
	return s.Name(locale)
}

// Payload is the create and update request body.
type Payload struct {
	NameArabic  string `json:"nameArabic"`
	NameEnglish string `json:"nameEnglish"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// Schema returns the scientific degree schema.
func Schema() crud.Schema[ScientificDegree, Payload] {
	return crud.Schema[ScientificDegree, Payload]{
		Name: Name,
		Labels: crud.Labels{
			Singular: i18n.NewText("Scientific degree", "الدرجة العلمية"),
			Plural:   i18n.NewText("Scientific degrees", "الدرجات العلمية"),
		},
		Resource:       access.ScientificDegrees,
		Endpoint:       crud.Endpoint{Path: "ScientificDegrees", ReasonIn: crud.ReasonInQuery},
		DefaultFilters: crud.DefaultFilters().WithOrder("nameEnglish", false),
		Columns: []crud.Column[ScientificDegree]{
			{Header: i18n.NewText("Code", "الرمز"), Value: func(s ScientificDegree, _ i18n.Locale) string { return s.Code }},
			{Header: i18n.NewText("Name", "الاسم"), Value: func(s ScientificDegree, l i18n.Locale) string { return s.Name(l) }},
			{Header: i18n.NewText("Status", "الحالة"), Value: func(s ScientificDegree, l i18n.Locale) string {
				return crud.StatusLabel(s.IsActive).In(l)
			}},
		},
		Toolbar:    []crud.RowAction{crud.CreateAction(access.ScientificDegrees)},
		RowActions: crud.StandardActions(access.ScientificDegrees, true),
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
		FromEntity: func(s ScientificDegree) crud.Values {
			return crud.Values{
				"nameEnglish": s.NameEnglish,
				"nameArabic":  s.NameArabic,
				"code":        s.Code,
				"description": s.Description,
				"isActive":    crud.FormatBool(s.IsActive),
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

// Initialize creates the scientific degree module over the backend client.
func Initialize(client rest.ClientInterface) *crud.Module[ScientificDegree, Payload] {
	return crud.NewRESTModule(Schema(), client)
}
