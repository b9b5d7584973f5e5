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

// Package category manages staff categories and their category head snapshots.
package category

import (
	"net/url"
	"strings"

	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// Name is the entity name used on the command line and in logs.
const Name = "category"

const includeCategoryHeads = "includeCategoryHeads"

// Head is a category head assignment embedded in a category response.
type Head struct {
	ID              crud.ID        `json:"id"`
	UserID          crud.ID        `json:"userId"`
	FullNameEnglish string         `json:"fullNameEnglish"`
	FullNameArabic  string         `json:"fullNameArabic"`
	AssignedAt      rest.Timestamp `json:"assignedAt"`
}

// Name returns the head name for the locale.
func (h Head) Name(locale i18n.Locale) string {
	return i18n.NewText(h.FullNameEnglish, h.FullNameArabic).In(locale)
}

// Category is a staff category such as consultants or residents.
type Category struct {
	ID crud.ID `json:"id"`
	crud.BilingualName
	Description   string `json:"description,omitempty"`
	IsActive      bool   `json:"isActive"`
	CategoryHeads []Head `json:"categoryHeads,omitempty"`
	crud.Audit
}

// EntityID implements crud.Entity.
func (c Category) EntityID() crud.ID {
	return c.ID
}

// DisplayName implements crud.Entity.
func (c Category) DisplayName(locale i18n.Locale) string {
	return c.Name(locale)
}

// HeadNames returns the names of the category heads joined for display.
func (c Category) HeadNames(locale i18n.Locale) string {
	names := make([]string, 0, len(c.CategoryHeads))
	for _, h := range c.CategoryHeads {
		names = append(names, h.Name(locale))
	}
	return strings.Join(names, ", ")
}

// Payload is the create and update request body.
type Payload struct {
	NameArabic  string `json:"nameArabic"`
	NameEnglish string `json:"nameEnglish"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// Schema returns the category schema.
func Schema() crud.Schema[Category, Payload] {
	return crud.Schema[Category, Payload]{
		Name:     Name,
		Labels:   crud.Labels{Singular: i18n.NewText("Category", "الفئة"), Plural: i18n.NewText("Categories", "الفئات")},
		Resource: access.Categories,
		Endpoint: crud.Endpoint{
			Path:     "Categories",
			Query:    url.Values{includeCategoryHeads: []string{"true"}},
			ReasonIn: crud.ReasonInBody,
		},
		DefaultFilters: crud.DefaultFilters().WithOrder("nameEnglish", false).WithInclude(includeCategoryHeads, true),
		Columns: []crud.Column[Category]{
			{Header: i18n.NewText("Name", "الاسم"), Value: func(c Category, l i18n.Locale) string { return c.Name(l) }},
			{Header: i18n.NewText("Category heads", "رؤساء الفئة"), Value: Category.HeadNames},
			{Header: i18n.NewText("Status", "الحالة"), Value: func(c Category, l i18n.Locale) string {
				return crud.StatusLabel(c.IsActive).In(l)
			}},
		},
		Toolbar:    []crud.RowAction{crud.CreateAction(access.Categories)},
		RowActions: crud.StandardActions(access.Categories, true),
		Fields: []crud.FieldSpec{
			{Name: "nameEnglish", Label: i18n.NewText("English name", "الاسم بالإنجليزية"),
				Rules: "required,min=2,max=100"},
			{Name: "nameArabic", Label: i18n.NewText("Arabic name", "الاسم بالعربية"),
				Rules: "required,min=2,max=100"},
			{Name: "description", Label: i18n.NewText("Description", "الوصف"), Kind: crud.LongTextField,
				Rules: "max=500"},
			{Name: "isActive", Label: i18n.NewText("Active", "نشط"), Kind: crud.BoolField, EditOnly: true},
		},
		FromEntity: func(c Category) crud.Values {
			return crud.Values{
				"nameEnglish": c.NameEnglish,
				"nameArabic":  c.NameArabic,
				"description": c.Description,
				"isActive":    crud.FormatBool(c.IsActive),
			}
		},
		BuildPayload: func(_ crud.FormMode, v crud.Values) (Payload, error) {
			return Payload{
				NameArabic:  v.String("nameArabic"),
				NameEnglish: v.String("nameEnglish"),
				Description: v.String("description"),
				IsActive:    v.Bool("isActive"),
			}, nil
		},
		Updatable:    true,
		DeleteReason: crud.NewReasonRule(5),
	}
}

// Initialize creates the category module over the backend client.
func Initialize(client rest.ClientInterface) *crud.Module[Category, Payload] {
	return crud.NewRESTModule(Schema(), client)
}
