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

// Package doctor manages doctor accounts and their department, category and degree assignments.
package doctor

import (
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

// Doctor is a doctor account.
type Doctor struct {
	ID                          crud.ID `json:"id"`
	FullNameEnglish             string  `json:"fullNameEnglish"`
	FullNameArabic              string  `json:"fullNameArabic"`
	Email                       string  `json:"email"`
	PhoneNumber                 string  `json:"phoneNumber,omitempty"`
	DepartmentID                crud.ID `json:"departmentId,omitempty"`
	DepartmentNameEnglish       string  `json:"departmentNameEnglish,omitempty"`
	DepartmentNameArabic        string  `json:"departmentNameArabic,omitempty"`
	CategoryID                  crud.ID `json:"categoryId,omitempty"`
	CategoryNameEnglish         string  `json:"categoryNameEnglish,omitempty"`
	CategoryNameArabic          string  `json:"categoryNameArabic,omitempty"`
	ScientificDegreeID          crud.ID `json:"scientificDegreeId,omitempty"`
	ScientificDegreeNameEnglish string  `json:"scientificDegreeNameEnglish,omitempty"`
	ScientificDegreeNameArabic  string  `json:"scientificDegreeNameArabic,omitempty"`
	IsActive                    bool    `json:"isActive"`
	crud.Audit
}

// EntityID implements crud.Entity.
func (d Doctor) EntityID() crud.ID {
	return d.ID
}

// DisplayName implements crud.Entity.
func (d Doctor) DisplayName(locale i18n.Locale) string {
	return i18n.NewText(d.FullNameEnglish, d.FullNameArabic).In(locale)
}

// Department returns the department name for the locale.
func (d Doctor) Department(locale i18n.Locale) string {
	return i18n.NewText(d.DepartmentNameEnglish, d.DepartmentNameArabic).In(locale)
}

// Category returns the category name for the locale.
func (d Doctor) Category(locale i18n.Locale) string {
	return i18n.NewText(d.CategoryNameEnglish, d.CategoryNameArabic).In(locale)
}

// ScientificDegree returns the degree name for the locale.
func (d Doctor) ScientificDegree(locale i18n.Locale) string {
	return i18n.NewText(d.ScientificDegreeNameEnglish, d.ScientificDegreeNameArabic).In(locale)
}

// Payload is the create and update request body. UpdateReason is only sent on update.
type Payload struct {
	FullNameEnglish    string `json:"fullNameEnglish"`
	FullNameArabic     string `json:"fullNameArabic"`
	Email              string `json:"email,omitempty"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	DepartmentID       int64  `json:"departmentId"`
	CategoryID         int64  `json:"categoryId"`
	ScientificDegreeID int64  `json:"scientificDegreeId"`
	IsActive           *bool  `json:"isActive,omitempty"`
	UpdateReason       string `json:"updateReason,omitempty"`
}
