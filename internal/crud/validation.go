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
	"strings"

	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

// FieldError is a client side validation failure of one field.
type FieldError struct {
	Field   string
	Message i18n.Text
}

// ValidationError collects the field errors that block a submission.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message.In(i18n.English))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the message of a field.
func (e *ValidationError) For(field string) (i18n.Text, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message, true
		}
	}
	return i18n.Text{}, false
}

// ErrorInfo converts the validation failure into an ErrorInfo of the validation kind.
func (e *ValidationError) ErrorInfo(locale i18n.Locale) *serviceerror.ErrorInfo {
	info := serviceerror.FromServiceError(serviceerror.ErrorValidation, serviceerror.KindValidation, nil)
	info.Errors = nil
	info.MessageEn = serviceerror.ErrorValidation.ErrorDescription
	info.MessageAr = "البيانات المدخلة غير صالحة"
	for _, f := range e.Fields {
		info.Errors = append(info.Errors, f.Field+": "+f.Message.In(locale))
	}
	return info
}

func (e *ValidationError) add(field string, message i18n.Text) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
