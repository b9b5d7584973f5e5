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

// Package department manages hospital departments and their manager snapshot.
package department

import (
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// Manager is the manager assignment embedded in a department response.
type Manager struct {
	ID              crud.ID        `json:"id"`
	UserID          crud.ID        `json:"userId"`
	FullNameEnglish string         `json:"fullNameEnglish"`
	FullNameArabic  string         `json:"fullNameArabic"`
	Email           string         `json:"email,omitempty"`
	AssignedAt      rest.Timestamp `json:"assignedAt"`
}

// Name returns the manager name for the locale.
func (m Manager) Name(locale i18n.Locale) string {
	return i18n.NewText(m.FullNameEnglish, m.FullNameArabic).In(locale)
}

// Department is a hospital department.
type Department struct {
	ID crud.ID `json:"id"`
	crud.BilingualName
	Code        string   `json:"code"`
	Description string   `json:"description,omitempty"`
	IsActive    bool     `json:"isActive"`
	Manager     *Manager `json:"manager,omitempty"`
	DoctorCount int      `json:"doctorCount,omitempty"`
	crud.Audit
}

// EntityID implements crud.Entity.
func (d Department) EntityID() crud.ID {
	return d.ID
}

// DisplayName implements crud.Entity.
func (d Department) DisplayName(locale i18n.Locale) string {
	return d.Name(locale)
}

// Payload is the create and update request body.
type Payload struct {
	NameArabic  string `json:"nameArabic"`
	NameEnglish string `json:"nameEnglish"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
