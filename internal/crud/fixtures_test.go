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
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

type widget struct {
	ID ID `json:"id"`
	BilingualName
	Code         string `json:"code"`
	DepartmentID ID     `json:"departmentId"`
}

func (w widget) EntityID() ID {
	return w.ID
}

func (w widget) DisplayName(locale i18n.Locale) string {
	return w.Name(locale)
}

type widgetPayload struct {
	NameEnglish  string `json:"nameEnglish"`
	NameArabic   string `json:"nameArabic"`
	Code         string `json:"code,omitempty"`
	DepartmentID int64  `json:"departmentId"`
	UpdateReason string `json:"updateReason,omitempty"`
}

func newWidget(id, en string) widget {
	return widget{ID: ID(id), BilingualName: BilingualName{NameEnglish: en, NameArabic: en + "-ar"}}
}

type deleteCall struct {
	ID     ID
	Reason string
}

type fakeResource struct {
	mu       sync.Mutex
	listFn   func(ctx context.Context, filters FilterState) (ListResult[widget], error)
	getFn    func(ctx context.Context, id ID) (widget, error)
	createFn func(ctx context.Context, payload widgetPayload) (Mutation[widget], error)
	updateFn func(ctx context.Context, id ID, payload widgetPayload) (Mutation[widget], error)
	deleteFn func(ctx context.Context, id ID, reason string) (i18n.Text, error)

	listCalls   []FilterState
	createCalls []widgetPayload
	updateCalls []widgetPayload
	deleteCalls []deleteCall
}

func (r *fakeResource) List(ctx context.Context, filters FilterState) (ListResult[widget], error) {
	r.mu.Lock()
	r.listCalls = append(r.listCalls, filters)
	fn := r.listFn
	r.mu.Unlock()
	if fn == nil {
		return ListResult[widget]{Items: []widget{}, Pagination: NewPagination(0, filters.Page, filters.PageSize)}, nil
	}
	return fn(ctx, filters)
}

func (r *fakeResource) Get(ctx context.Context, id ID) (widget, error) {
	if r.getFn == nil {
		return newWidget(id.String(), "Widget "+id.String()), nil
	}
	return r.getFn(ctx, id)
}

func (r *fakeResource) Create(ctx context.Context, payload widgetPayload) (Mutation[widget], error) {
	r.mu.Lock()
	r.createCalls = append(r.createCalls, payload)
	r.mu.Unlock()
	if r.createFn == nil {
		return Mutation[widget]{Entity: widget{ID: "100", BilingualName: BilingualName{
			NameEnglish: payload.NameEnglish, NameArabic: payload.NameArabic}}}, nil
	}
	return r.createFn(ctx, payload)
}

func (r *fakeResource) Update(ctx context.Context, id ID, payload widgetPayload) (Mutation[widget], error) {
	r.mu.Lock()
	r.updateCalls = append(r.updateCalls, payload)
	r.mu.Unlock()
	if r.updateFn == nil {
		return Mutation[widget]{Entity: widget{ID: id, BilingualName: BilingualName{
			NameEnglish: payload.NameEnglish, NameArabic: payload.NameArabic}}}, nil
	}
	return r.updateFn(ctx, id, payload)
}

func (r *fakeResource) Delete(ctx context.Context, id ID, reason string) (i18n.Text, error) {
	r.mu.Lock()
	r.deleteCalls = append(r.deleteCalls, deleteCall{ID: id, Reason: reason})
	r.mu.Unlock()
	if r.deleteFn == nil {
		return i18n.Text{}, nil
	}
	return r.deleteFn(ctx, id, reason)
}

func (r *fakeResource) listCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listCalls)
}

func (r *fakeResource) lastList() FilterState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls[len(r.listCalls)-1]
}

// pageOf serves a fixed collection of n widgets with the requested page.
func pageOf(total int) func(context.Context, FilterState) (ListResult[widget], error) {
	return func(_ context.Context, f FilterState) (ListResult[widget], error) {
		items := []widget{}
		start := (f.Page - 1) * f.PageSize
		for i := start; i < total && i < start+f.PageSize; i++ {
			id := strconv.Itoa(i + 1)
			items = append(items, newWidget(id, "Widget "+id))
		}
		return ListResult[widget]{Items: items, Pagination: NewPagination(total, f.Page, f.PageSize)}, nil
	}
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	alerts    []ErrorDialog
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Alert(dialog ErrorDialog) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, dialog)
}

type fakeOptions struct {
	options map[string][]Option
	err     error
}

func (o fakeOptions) Options(_ context.Context, kind string) ([]Option, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.options[kind], nil
}

var errBoom = errors.New("boom")

func widgetSchema() Schema[widget, widgetPayload] {
	return Schema[widget, widgetPayload]{
		Name:     "widget",
		Labels:   Labels{Singular: i18n.NewText("Widget", "أداة"), Plural: i18n.NewText("Widgets", "أدوات")},
		Resource: access.Departments,
		Endpoint: Endpoint{Path: "Widgets"},
		DefaultFilters: FilterState{Page: 1, PageSize: 10, OrderBy: "nameEnglish",
			OrderDesc: boolPtr(false)},
		Columns: []Column[widget]{
			{Header: i18n.NewText("Code", "الرمز"), Value: func(w widget, _ i18n.Locale) string { return w.Code }},
		},
		Toolbar:    []RowAction{CreateAction(access.Departments)},
		RowActions: StandardActions(access.Departments, true),
		Fields: []FieldSpec{
			{Name: "nameEnglish", Label: i18n.NewText("English name", "الاسم بالإنجليزية"), Rules: "required,min=2,max=100"},
			{Name: "nameArabic", Label: i18n.NewText("Arabic name", "الاسم بالعربية"), Rules: "required,min=2,max=100"},
			{Name: "code", Label: i18n.NewText("Code", "الرمز"), Rules: "required,max=10", Immutable: true},
			{Name: "departmentId", Label: i18n.NewText("Department", "القسم"), Kind: ReferenceField,
				Rules: "required,gt=0", Lookup: "departments"},
			{Name: "updateReason", Label: i18n.NewText("Update reason", "سبب التحديث"), Kind: LongTextField,
				EditOnly: true, Reason: &ReasonRule{Min: 10, Max: 500}},
		},
		FromEntity: func(w widget) Values {
			return Values{
				"nameEnglish":  w.NameEnglish,
				"nameArabic":   w.NameArabic,
				"code":         w.Code,
				"departmentId": w.DepartmentID.String(),
			}
		},
		BuildPayload: func(_ FormMode, v Values) (widgetPayload, error) {
			dept, _ := ID(v["departmentId"]).Int()
			return widgetPayload{
				NameEnglish:  v["nameEnglish"],
				NameArabic:   v["nameArabic"],
				Code:         v["code"],
				DepartmentID: dept,
				UpdateReason: v["updateReason"],
			}, nil
		},
		Updatable:    true,
		DeleteReason: ReasonRule{Min: 3, Max: 500},
	}
}

func newWidgetModule(resource *fakeResource) *Module[widget, widgetPayload] {
	return NewModule[widget, widgetPayload](widgetSchema(), resource)
}
