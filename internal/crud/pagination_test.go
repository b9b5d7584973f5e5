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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationConsistency(t *testing.T) {
	for total := 0; total <= 57; total++ {
		for _, size := range []int{1, 3, 10, 25} {
			expectedPages := (total + size - 1) / size
			if expectedPages == 0 {
				expectedPages = 1
			}
			for page := 1; page <= expectedPages; page++ {
				p := NewPagination(total, page, size)
				assert.Equal(t, expectedPages, p.TotalPages, "total=%d size=%d", total, size)
				assert.Equal(t, page < expectedPages, p.HasNextPage, "total=%d size=%d page=%d", total, size, page)
				assert.Equal(t, page > 1, p.HasPreviousPage, "total=%d size=%d page=%d", total, size, page)
			}
		}
	}
}

func TestNewPaginationExamples(t *testing.T) {
	p := NewPagination(23, 3, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPreviousPage)

	empty := NewPagination(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPreviousPage)
}

func TestNewPaginationClampsInvalidInput(t *testing.T) {
	p := NewPagination(-4, 0, 0)

	assert.Equal(t, 0, p.TotalCount)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)
}

func TestPaginationWithTotal(t *testing.T) {
	p := NewPagination(21, 3, 10).WithTotal(20)

	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 3, p.Page)
	assert.False(t, p.HasNextPage)
}

func TestPaginationLinks(t *testing.T) {
	assert.Equal(t, PageLinks{First: 1, Previous: 1, Next: 3, Last: 5}, NewPagination(50, 2, 10).Links())
	assert.Equal(t, PageLinks{First: 1, Last: 1}, NewPagination(3, 1, 10).Links())
}

func TestPaginationRange(t *testing.T) {
	from, to := NewPagination(23, 3, 10).Range(3)
	assert.Equal(t, 21, from)
	assert.Equal(t, 23, to)

	from, to = NewPagination(0, 1, 10).Range(0)
	assert.Equal(t, 0, from)
	assert.Equal(t, 0, to)
}
