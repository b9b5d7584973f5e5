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
	"errors"
	"fmt"
	"net/http"

	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

// Labels are the singular and plural display names of an entity.
type Labels struct {
	Singular i18n.Text
	Plural   i18n.Text
}

func formatText(en, ar string, arg i18n.Text) i18n.Text {
	return i18n.NewText(fmt.Sprintf(en, arg.En), fmt.Sprintf(ar, arg.Ar))
}

// FailureMessage returns the generic message for a failed operation with the given status.
func (l Labels) FailureMessage(op Operation, status int) i18n.Text {
	switch status {
	case http.StatusForbidden, http.StatusUnauthorized:
		if op == OpList || op == OpDetail {
			return formatText("You do not have permission to view %s", "ليس لديك صلاحية لعرض %s", l.Plural)
		}
		return formatText("You do not have permission to modify %s", "ليس لديك صلاحية لتعديل %s", l.Plural)
	case http.StatusNotFound:
		if op == OpList {
			return formatText("No %s were found", "لم يتم العثور على %s", l.Plural)
		}
		return formatText("%s not found", "%s غير موجود", l.Singular)
	case http.StatusBadRequest:
		switch op {
		case OpUpdate:
			return i18n.NewText("ID mismatch or invalid data", "عدم تطابق المعرف أو بيانات غير صالحة")
		case OpDelete:
			return i18n.NewText("A valid reason is required to delete", "يجب إدخال سبب صالح للحذف")
		case OpCreate:
			return formatText("Invalid %s data", "بيانات %s غير صالحة", l.Singular)
		}
	}
	switch op {
	case OpList:
		return formatText("Failed to load %s", "فشل تحميل %s", l.Plural)
	case OpDetail:
		return formatText("Failed to load %s details", "فشل تحميل تفاصيل %s", l.Singular)
	case OpCreate:
		return formatText("Failed to create %s", "فشل إنشاء %s", l.Singular)
	case OpUpdate:
		return formatText("Failed to update %s", "فشل تحديث %s", l.Singular)
	default:
		return formatText("Failed to delete %s", "فشل حذف %s", l.Singular)
	}
}

// SuccessMessage returns the generic message for a successful mutation.
func (l Labels) SuccessMessage(op Operation) i18n.Text {
	switch op {
	case OpCreate:
		return formatText("%s created successfully", "تم إنشاء %s بنجاح", l.Singular)
	case OpUpdate:
		return formatText("%s updated successfully", "تم تحديث %s بنجاح", l.Singular)
	case OpDelete:
		return formatText("%s deleted successfully", "تم حذف %s بنجاح", l.Singular)
	default:
		return i18n.Text{}
	}
}

// errorInfoFor converts an operation failure into an ErrorInfo carrying a localized fallback.
// The returned value is never shared with the caller's error.
func (l Labels) errorInfoFor(op Operation, err error) *serviceerror.ErrorInfo {
	var info *serviceerror.ErrorInfo
	if errors.As(err, &info) && info != nil {
		c := *info
		c.Errors = append([]string(nil), info.Errors...)
		info = &c
	} else {
		info = serviceerror.FromServiceError(serviceerror.ErrorTransport, serviceerror.KindUnknown, nil)
		info.Errors = []string{err.Error()}
	}
	return info.WithFallback(l.FailureMessage(op, info.Status))
}
