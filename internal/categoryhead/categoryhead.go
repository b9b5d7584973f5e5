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

// Package categoryhead assigns doctors as heads of staff categories and removes those assignments.
package categoryhead

import (
	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/lookup"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// Name is the entity name used on the command line and in logs.
const Name = "categoryhead"

// Assignment links a user to the category they head.
type Assignment struct {
	ID                  crud.ID        `json:"id"`
	CategoryID          crud.ID        `json:"categoryId"`
	CategoryNameEnglish string         `json:"categoryNameEnglish,omitempty"`
	CategoryNameArabic  string         `json:"categoryNameArabic,omitempty"`
	UserID              crud.ID        `json:"userId"`
	FullNameEnglish     string         `json:"fullNameEnglish"`
	FullNameArabic      string         `json:"fullNameArabic"`
	Email               string         `json:"email,omitempty"`
	AssignedAt          rest.Timestamp `json:"assignedAt"`
	IsActive            bool           `json:"isActive"`
	crud.Audit
}

// EntityID implements crud.Entity.
func (a Assignment) EntityID() crud.ID {
	return a.ID
}

// DisplayName implements crud.Entity.
func (a Assignment) DisplayName(locale i18n.Locale) string {
	return i18n.NewText(a.FullNameEnglish, a.FullNameArabic).In(locale)
}

// Category returns the category name for the locale.
func (a Assignment) Category(locale i18n.Locale) string {
	return i18n.NewText(a.CategoryNameEnglish, a.CategoryNameArabic).In(locale)
}

// Payload is the assign request body.
type Payload struct {
	CategoryID int64 `json:"categoryId"`
	UserID     int64 `json:"userId"`
}

// Schema returns the category head schema.
func Schema() crud.Schema[Assignment, Payload] {
	return crud.Schema[Assignment, Payload]{
		Name: Name,
		Labels: crud.Labels{
			Singular: i18n.NewText("Category head", "رئيس الفئة"),
			Plural:   i18n.NewText("Category heads", "رؤساء الفئات"),
		},
		Resource:       access.CategoryHeads,
		Endpoint:       crud.Endpoint{Path: "CategoryHeads", ReasonIn: crud.ReasonInBody},
		DefaultFilters: crud.DefaultFilters(),
		Columns: []crud.Column[Assignment]{
			{Header: i18n.NewText("Category", "الفئة"), Value: Assignment.Category},
			{Header: i18n.NewText("Head", "الرئيس"), Value: Assignment.DisplayName},
			{Header: i18n.NewText("Email", "البريد الإلكتروني"),
				Value: func(a Assignment, _ i18n.Locale) string { return a.Email }},
			{Header: i18n.NewText("Status", "الحالة"), Value: func(a Assignment, l i18n.Locale) string {
				return crud.StatusLabel(a.IsActive).In(l)
			}},
		},
		Toolbar:    []crud.RowAction{crud.AssignAction(access.CategoryHeads)},
		RowActions: crud.AssignmentActions(access.CategoryHeads),
		Fields: []crud.FieldSpec{
			{Name: "categoryId", Label: i18n.NewText("Category", "الفئة"), Kind: crud.ReferenceField,
				Rules: "required,gt=0", Lookup: lookup.Categories},
			{Name: "userId", Label: i18n.NewText("Doctor", "الطبيب"), Kind: crud.ReferenceField,
				Rules: "required,gt=0", Lookup: lookup.Doctors},
		},
		BuildPayload: func(_ crud.FormMode, v crud.Values) (Payload, error) {
			return Payload{CategoryID: v.Int("categoryId"), UserID: v.Int("userId")}, nil
		},
		DeleteReason: crud.NewReasonRule(10),
		DeleteAction: access.Remove,
	}
}

// Initialize creates the category head module over the backend client.
func Initialize(client rest.ClientInterface) *crud.Module[Assignment, Payload] {
	return crud.NewRESTModule(Schema(), client)
}
