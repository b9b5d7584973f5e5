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

import "github.com/asgardeo/rosteradmin/internal/system/constants"

// Pagination is derived from the latest list response and never edited in place.
type Pagination struct {
	TotalCount      int  `json:"totalCount"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPagination computes the pagination for a total count, page and page size.
// There is always at least one page.
func NewPagination(totalCount, page, pageSize int) Pagination {
	if totalCount < 0 {
		totalCount = 0
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		TotalCount:      totalCount,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// WithTotal recomputes the pagination for a new total count.
func (p Pagination) WithTotal(totalCount int) Pagination {
	return NewPagination(totalCount, p.Page, p.PageSize)
}

// PageLinks are the page numbers reachable from the pagination controls. Zero means not available.
type PageLinks struct {
	First    int `json:"first"`
	Previous int `json:"previous"`
	Next     int `json:"next"`
	Last     int `json:"last"`
}

// Links returns the page numbers of the pagination controls.
func (p Pagination) Links() PageLinks {
	links := PageLinks{First: 1, Last: p.TotalPages}
	if p.HasPreviousPage {
		links.Previous = p.Page - 1
	}
	if p.HasNextPage {
		links.Next = p.Page + 1
	}
	return links
}

// Range returns the 1-based positions of the first and last rows of the page.
// Both are zero when the page is empty.
func (p Pagination) Range(rows int) (int, int) {
	if rows <= 0 {
		return 0, 0
	}
	from := (p.Page-1)*p.PageSize + 1
	return from, from + rows - 1
}
