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

package access

// Resource is a roster resource guarded by the policy.
type Resource string

const (
	// Departments is the department resource.
	Departments Resource = "departments"
	// ScientificDegrees is the scientific degree resource.
	ScientificDegrees Resource = "scientific_degrees"
	// Categories is the category resource.
	Categories Resource = "categories"
	// Doctors is the doctor resource.
	Doctors Resource = "doctors"
	// DepartmentManagers is the department manager assignment resource.
	DepartmentManagers Resource = "department_managers"
	// CategoryHeads is the category head assignment resource.
	CategoryHeads Resource = "category_heads"
)

// Action is an operation on a resource.
type Action string

const (
	// View lists or reads a resource.
	View Action = "view"
	// Create creates a resource.
	Create Action = "create"
	// Edit updates a resource.
	Edit Action = "edit"
	// Delete deletes a resource.
	Delete Action = "delete"
	// Assign assigns a manager or category head.
	Assign Action = "assign"
	// Remove removes a manager or category head assignment.
	Remove Action = "remove"
)

// Permission is an action on a resource.
type Permission struct {
	Resource Resource
	Action   Action
}

// Allow returns the permission for the action on the resource.
func Allow(resource Resource, action Action) Permission {
	return Permission{Resource: resource, Action: action}
}

// String returns the permission as resource:action.
func (p Permission) String() string {
	return string(p.Resource) + ":" + string(p.Action)
}

var viewAll = []Permission{
	{Departments, View},
	{ScientificDegrees, View},
	{Categories, View},
	{Doctors, View},
	{DepartmentManagers, View},
	{CategoryHeads, View},
}

// policy is the single capability table of the client.
var policy = map[Role]map[Permission]bool{
	SystemAdministrator: grant(viewAll,
		Permission{Departments, Create}, Permission{Departments, Edit}, Permission{Departments, Delete},
		Permission{ScientificDegrees, Create}, Permission{ScientificDegrees, Edit},
		Permission{ScientificDegrees, Delete},
		Permission{Categories, Create}, Permission{Categories, Edit}, Permission{Categories, Delete},
		Permission{Doctors, Create}, Permission{Doctors, Edit}, Permission{Doctors, Delete},
		Permission{DepartmentManagers, Assign}, Permission{DepartmentManagers, Remove},
		Permission{CategoryHeads, Assign}, Permission{CategoryHeads, Remove},
	),
	CategoryHead: grant(viewAll,
		Permission{Doctors, Create}, Permission{Doctors, Edit},
		Permission{DepartmentManagers, Assign}, Permission{DepartmentManagers, Remove},
	),
	DepartmentManager: grant(viewAll,
		Permission{Doctors, Edit},
	),
	Doctor: grant(nil,
		Permission{Departments, View}, Permission{Categories, View}, Permission{Doctors, View},
	),
}

func grant(base []Permission, extra ...Permission) map[Permission]bool {
	out := make(map[Permission]bool, len(base)+len(extra))
	for _, p := range base {
		out[p] = true
	}
	for _, p := range extra {
		out[p] = true
	}
	return out
}

// Can reports whether the role holds the permission.
func (r Role) Can(p Permission) bool {
	return policy[r][p]
}

// CanAny reports whether the role holds at least one of the permissions.
func (r Role) CanAny(ps ...Permission) bool {
	for _, p := range ps {
		if r.Can(p) {
			return true
		}
	}
	return false
}
