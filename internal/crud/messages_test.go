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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

var widgetLabels = Labels{Singular: i18n.NewText("Widget", "أداة"), Plural: i18n.NewText("Widgets", "أدوات")}

func TestFailureMessageIsStatusAware(t *testing.T) {
	notFound := widgetLabels.FailureMessage(OpDetail, http.StatusNotFound)
	forbidden := widgetLabels.FailureMessage(OpDetail, http.StatusForbidden)
	generic := widgetLabels.FailureMessage(OpDetail, http.StatusInternalServerError)

	assert.Equal(t, "Widget not found", notFound.En)
	assert.Equal(t, "You do not have permission to view Widgets", forbidden.En)
	assert.Equal(t, "Failed to load Widget details", generic.En)
	assert.NotEqual(t, notFound, forbidden)
	assert.NotEmpty(t, notFound.Ar)
}

func TestFailureMessageBadRequestCases(t *testing.T) {
	assert.Equal(t, "ID mismatch or invalid data", widgetLabels.FailureMessage(OpUpdate, http.StatusBadRequest).En)
	assert.Equal(t, "A valid reason is required to delete",
		widgetLabels.FailureMessage(OpDelete, http.StatusBadRequest).En)
	assert.Equal(t, "Failed to load Widgets", widgetLabels.FailureMessage(OpList, 0).En)
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, "Widget created successfully", widgetLabels.SuccessMessage(OpCreate).En)
	assert.Equal(t, "تم حذف أداة بنجاح", widgetLabels.SuccessMessage(OpDelete).Ar)
	assert.True(t, widgetLabels.SuccessMessage(OpList).IsZero())
}

func TestErrorInfoForKeepsBackendMessage(t *testing.T) {
	original := serviceerror.NewErrorInfo(http.StatusBadRequest)
	original.Message = "Reason is required"
	original.Errors = []string{"reason: required"}

	info := widgetLabels.errorInfoFor(OpDelete, original)

	for _, locale := range []i18n.Locale{i18n.English, i18n.Arabic} {
		assert.Equal(t, "Reason is required", info.Localized(locale, i18n.Text{}))
	}
	info.Errors[0] = "changed"
	assert.Equal(t, "reason: required", original.Errors[0])
}

func TestErrorInfoForFillsFallback(t *testing.T) {
	info := widgetLabels.errorInfoFor(OpDetail, serviceerror.NewErrorInfo(http.StatusNotFound))

	assert.Equal(t, serviceerror.KindNotFound, info.Kind)
	assert.Equal(t, "Widget not found", info.Localized(i18n.English, i18n.Text{}))
	assert.Equal(t, "أداة غير موجود", info.Localized(i18n.Arabic, i18n.Text{}))
}

func TestErrorInfoForPlainError(t *testing.T) {
	info := widgetLabels.errorInfoFor(OpList, errBoom)

	require.NotNil(t, info)
	assert.Equal(t, serviceerror.KindUnknown, info.Kind)
	assert.Equal(t, "Failed to load Widgets", info.Localized(i18n.English, i18n.Text{}))
	assert.Equal(t, []string{"boom"}, info.Errors)
}
