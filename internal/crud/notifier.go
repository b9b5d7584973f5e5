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
	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

// ErrorDialog is the content of a blocking error dialog.
type ErrorDialog struct {
	Title   string
	Message string
	Errors  []string
	Kind    serviceerror.ErrorKind
	Status  int
}

// Notifier presents the outcome of user actions.
type Notifier interface {
	// Success shows a transient notification.
	Success(message string)
	// Alert shows a blocking dialog that must be dismissed.
	Alert(dialog ErrorDialog)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

// Success implements Notifier.
func (NopNotifier) Success(string) {}

// Alert implements Notifier.
func (NopNotifier) Alert(ErrorDialog) {}

func newErrorDialog(info *serviceerror.ErrorInfo, locale i18n.Locale, title, fallback i18n.Text) ErrorDialog {
	return ErrorDialog{
		Title:   title.In(locale),
		Message: info.Localized(locale, fallback),
		Errors:  append([]string(nil), info.Errors...),
		Kind:    info.Kind,
		Status:  info.Status,
	}
}

var errorDialogTitle = i18n.NewText("Error", "خطأ")
