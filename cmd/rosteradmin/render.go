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

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/utils"
)

// maxCellWidth is the number of characters shown per list cell.
const maxCellWidth = 40

func currentLocale() i18n.Locale {
	return i18n.CurrentLocale()
}

// consoleNotifier writes toasts and error dialogs to the console.
type consoleNotifier struct {
	out io.Writer
}

func newConsoleNotifier(out io.Writer) *consoleNotifier {
	return &consoleNotifier{out: out}
}

// Success implements crud.Notifier.
func (n *consoleNotifier) Success(message string) {
	_, _ = fmt.Fprintln(n.out, message)
}

// Alert implements crud.Notifier.
func (n *consoleNotifier) Alert(dialog crud.ErrorDialog) {
	_, _ = fmt.Fprintf(n.out, "%s: %s\n", dialog.Title, dialog.Message)
	for _, detail := range dialog.Errors {
		_, _ = fmt.Fprintf(n.out, "  - %s\n", detail)
	}
}

func renderList[T crud.Entity](out io.Writer, view crud.ListView[T]) error {
	if view.Direction == i18n.RightToLeft {
		_, _ = fmt.Fprintln(out, "\u200f"+view.Title)
	} else {
		_, _ = fmt.Fprintln(out, view.Title)
	}
	if view.Pagination != nil {
		p := view.Pagination
		_, _ = fmt.Fprintf(out, "%d-%d of %d (page %d/%d)\n", view.From, view.To, p.TotalCount, p.Page,
			p.TotalPages)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	headers := append([]string{"ID"}, view.Headers...)
	_, _ = fmt.Fprintln(w, strings.Join(append(headers, "Actions"), "\t"))
	for _, row := range view.Rows {
		names := make([]string, 0, len(row.Actions))
		for _, action := range row.Actions {
			names = append(names, action.Name)
		}
		cells := []string{row.ID.String()}
		for _, cell := range row.Cells {
			cells = append(cells, utils.Truncate(cell, maxCellWidth))
		}
		_, _ = fmt.Fprintln(w, strings.Join(append(cells, strings.Join(names, ",")), "\t"))
	}
	return w.Flush()
}

func renderDetails(out io.Writer, rows [][2]string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s:\t%s\n", row[0], row[1])
	}
	return w.Flush()
}
