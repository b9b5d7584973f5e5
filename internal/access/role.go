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

// Package access defines the roles of the roster admin client and the capabilities each role has.
package access

import (
	"strings"
)

// Role is a closed set of user roles known to the admin client.
type Role int

const (
	// Unknown is the role of an anonymous or unrecognised user. It has no capabilities.
	Unknown Role = iota
	// SystemAdministrator manages every roster resource.
	SystemAdministrator
	// CategoryHead manages the doctors of the categories they head.
	CategoryHead
	// DepartmentManager manages the doctors of the department they manage.
	DepartmentManager
	// Doctor can browse the roster.
	Doctor
)

var roleNames = map[Role]string{
	Unknown:             "Unknown",
	SystemAdministrator: "System Administrator",
	CategoryHead:        "Category Head",
	DepartmentManager:   "Department Manager",
	Doctor:              "Doctor",
}

var roleAliases = map[string]Role{
	"systemadministrator": SystemAdministrator,
	"systemadmin":         SystemAdministrator,
	"administrator":       SystemAdministrator,
	"admin":               SystemAdministrator,
	"categoryhead":        CategoryHead,
	"departmentmanager":   DepartmentManager,
	"manager":             DepartmentManager,
	"doctor":              Doctor,
	"user":                Doctor,
}

// ParseRole maps a backend role name to a Role. Case, spaces, hyphens and underscores are ignored.
func ParseRole(name string) Role {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
	if role, ok := roleAliases[key]; ok {
		return role
	}
	return Unknown
}

// String returns the display name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return roleNames[Unknown]
}

// RoleSource provides the role of the current user.
type RoleSource interface {
	CurrentRole() Role
}

// StaticRole is a RoleSource that always returns the same role.
type StaticRole Role

// CurrentRole implements RoleSource.
func (s StaticRole) CurrentRole() Role {
	return Role(s)
}
