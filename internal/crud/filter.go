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

package crud

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/constants"
)

// QueryStyle selects the ordering parameter names an endpoint understands.
type QueryStyle int

const (
	// OrderByStyle sends orderBy and orderDesc.
	OrderByStyle QueryStyle = iota
	// SortByStyle sends sortBy and sortDirection.
	SortByStyle
)

const dateLayout = "2006-01-02"

// FilterState holds the parameters of a list request. It is a value type; every
// setter returns a modified copy and all setters except WithPage reset the page to 1.
type FilterState struct {
	Search       string
	Page         int
	PageSize     int
	OrderBy      string
	OrderDesc    *bool
	IsActive     *bool
	CategoryID   ID
	DepartmentID ID
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	Includes     []string
}

// DefaultFilters returns the filter state used when an entity does not define its own.
func DefaultFilters() FilterState {
	return FilterState{Page: 1, PageSize: constants.DefaultPageSize}
}

// Normalize clamps the page and page size into their valid ranges.
func (f FilterState) Normalize() FilterState {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		f.PageSize = constants.MaxPageSize
	}
	f.Includes = append([]string(nil), f.Includes...)
	return f
}

// WithPage moves to the given page, clamped to at least 1.
func (f FilterState) WithPage(page int) FilterState {
	f = f.Normalize()
	if page < 1 {
		page = 1
	}
	f.Page = page
	return f
}

// WithSearch sets the free-text search.
func (f FilterState) WithSearch(search string) FilterState {
	f = f.Normalize()
	f.Search = search
	return f.first()
}

// WithPageSize sets the page size.
func (f FilterState) WithPageSize(size int) FilterState {
	f.PageSize = size
	return f.Normalize().first()
}

// WithOrder sets the ordering field and direction. An empty field clears ordering.
func (f FilterState) WithOrder(field string, desc bool) FilterState {
	f = f.Normalize()
	f.OrderBy = field
	f.OrderDesc = nil
	if field != "" {
		f.OrderDesc = boolPtr(desc)
	}
	return f.first()
}

// WithActive filters on the active flag. Nil removes the filter.
func (f FilterState) WithActive(active *bool) FilterState {
	f = f.Normalize()
	f.IsActive = nil
	if active != nil {
		f.IsActive = boolPtr(*active)
	}
	return f.first()
}

// WithCategory filters on a category. The zero ID removes the filter.
func (f FilterState) WithCategory(id ID) FilterState {
	f = f.Normalize()
	f.CategoryID = id
	return f.first()
}

// WithDepartment filters on a department. The zero ID removes the filter.
func (f FilterState) WithDepartment(id ID) FilterState {
	f = f.Normalize()
	f.DepartmentID = id
	return f.first()
}

// WithCreatedRange filters on the creation date. Nil bounds are open.
func (f FilterState) WithCreatedRange(from, to *time.Time) FilterState {
	f = f.Normalize()
	f.CreatedFrom = copyTime(from)
	f.CreatedTo = copyTime(to)
	return f.first()
}

// WithInclude turns an include flag such as includeManager on or off.
func (f FilterState) WithInclude(name string, on bool) FilterState {
	f = f.Normalize()
	includes := make([]string, 0, len(f.Includes)+1)
	for _, existing := range f.Includes {
		if existing != name {
			includes = append(includes, existing)
		}
	}
	if on && name != "" {
		includes = append(includes, name)
	}
	sort.Strings(includes)
	f.Includes = includes
	return f.first()
}

// Values serialises the defined parameters. Unset filters are not sent.
func (f FilterState) Values(style QueryStyle) url.Values {
	f = f.Normalize()
	values := url.Values{}
	if search := strings.TrimSpace(f.Search); search != "" {
		values.Set("search", search)
	}
	values.Set("page", strconv.Itoa(f.Page))
	values.Set("pageSize", strconv.Itoa(f.PageSize))
	if f.OrderBy != "" {
		if style == SortByStyle {
			values.Set("sortBy", f.OrderBy)
		} else {
			values.Set("orderBy", f.OrderBy)
		}
	}
	if f.OrderDesc != nil {
		if style == SortByStyle {
			direction := "asc"
			if *f.OrderDesc {
				direction = "desc"
			}
			values.Set("sortDirection", direction)
		} else {
			values.Set("orderDesc", strconv.FormatBool(*f.OrderDesc))
		}
	}
	if f.IsActive != nil {
		values.Set("isActive", strconv.FormatBool(*f.IsActive))
	}
	if !f.CategoryID.IsZero() {
		values.Set("categoryId", f.CategoryID.String())
	}
	if !f.DepartmentID.IsZero() {
		values.Set("departmentId", f.DepartmentID.String())
	}
	if f.CreatedFrom != nil {
		values.Set("createdFrom", f.CreatedFrom.Format(dateLayout))
	}
	if f.CreatedTo != nil {
		values.Set("createdTo", f.CreatedTo.Format(dateLayout))
	}
	for _, name := range f.Includes {
		values.Set(name, "true")
	}
	return values
}

// Key returns a canonical representation used to compare filter snapshots.
func (f FilterState) Key() string {
	return f.Values(OrderByStyle).Encode()
}

// Equal reports whether two filter states request the same data.
func (f FilterState) Equal(other FilterState) bool {
	return f.Key() == other.Key()
}

func (f FilterState) first() FilterState {
	f.Page = 1
	return f
}

func boolPtr(v bool) *bool {
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
