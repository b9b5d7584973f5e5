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

	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// FieldKind is the input kind of a form field.
type FieldKind int

const (
	// TextField is a single line of text.
	TextField FieldKind = iota
	// LongTextField is multi-line text.
	LongTextField
	// NumberField is an integer.
	NumberField
	// BoolField is true or false.
	BoolField
	// EmailField is an email address.
	EmailField
	// ReferenceField selects another entity by id.
	ReferenceField
	// DateField is a calendar date.
	DateField
)

// FormMode is whether a form creates or edits an entity.
type FormMode int

const (
	// CreateMode creates a new entity.
	CreateMode FormMode = iota
	// EditMode edits a loaded entity.
	EditMode
)

// Values are the raw form inputs keyed by field name.
type Values map[string]string

// Clone returns a copy of the values.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// FieldSpec declares one form field.
type FieldSpec struct {
	Name  string
	Label i18n.Text
	Kind  FieldKind
	// Rules are validator tags applied to the parsed value, for example "required,min=2,max=100".
	Rules string
	// Immutable fields are shown disabled in edit mode and never reach the payload builder.
	Immutable bool
	// CreateOnly fields are hidden in edit mode. EditOnly fields are hidden in create mode.
	CreateOnly bool
	EditOnly   bool
	// Reason applies a justification rule to the field.
	Reason *ReasonRule
	// Lookup names the option kind of a reference field.
	Lookup string
}

func (f FieldSpec) visible(mode FormMode) bool {
	if mode == EditMode {
		return !f.CreateOnly
	}
	return !f.EditOnly
}

func (f FieldSpec) editable(mode FormMode) bool {
	return !(mode == EditMode && f.Immutable)
}

// Option is a selectable reference value.
type Option struct {
	ID    ID
	Label i18n.Text
}

// OptionSource provides the options of reference fields.
type OptionSource interface {
	Options(ctx context.Context, kind string) ([]Option, error)
}

// RowAction is an action offered on a list row or toolbar.
type RowAction struct {
	Name       string
	Label      i18n.Text
	Permission access.Permission
}

// Action names used by list views.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// Column renders one column of a list row.
type Column[T Entity] struct {
	Header i18n.Text
	Value  func(entity T, locale i18n.Locale) string
}

// Schema declares everything that differs between entity types.
type Schema[T Entity, P any] struct {
	Name     string
	Labels   Labels
	Resource access.Resource
	Endpoint Endpoint

	DefaultFilters FilterState
	Columns        []Column[T]
	// Details are the rows of the detail view. Columns are used when empty.
	Details []Column[T]
	// Toolbar actions apply to the collection, RowActions to each row.
	Toolbar    []RowAction
	RowActions []RowAction

	Fields       []FieldSpec
	FromEntity   func(entity T) Values
	BuildPayload func(mode FormMode, values Values) (P, error)
	Updatable    bool

	DeleteReason ReasonRule
	// DeleteAction is the permission required to delete, usually delete or remove.
	DeleteAction access.Action
}

// Filters returns the default filters of the entity.
func (s Schema[T, P]) Filters() FilterState {
	return s.DefaultFilters.Normalize()
}

func (s Schema[T, P]) deletePermission() access.Permission {
	action := s.DeleteAction
	if action == "" {
		action = access.Delete
	}
	return access.Allow(s.Resource, action)
}

// Field returns the spec of a named field.
func (s Schema[T, P]) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// StandardActions returns the view, edit and delete row actions for a resource.
func StandardActions(resource access.Resource, updatable bool) []RowAction {
	actions := []RowAction{
		{Name: ActionView, Label: i18n.NewText("View", "عرض"), Permission: access.Allow(resource, access.View)},
	}
	if updatable {
		actions = append(actions, RowAction{Name: ActionEdit, Label: i18n.NewText("Edit", "تعديل"),
			Permission: access.Allow(resource, access.Edit)})
	}
	return append(actions, RowAction{Name: ActionDelete, Label: i18n.NewText("Delete", "حذف"),
		Permission: access.Allow(resource, access.Delete)})
}

// CreateAction returns the toolbar create action for a resource.
func CreateAction(resource access.Resource) RowAction {
	return RowAction{Name: ActionCreate, Label: i18n.NewText("Add", "إضافة"),
		Permission: access.Allow(resource, access.Create)}
}

// AssignAction returns the toolbar assign action of an assignment resource.
func AssignAction(resource access.Resource) RowAction {
	return RowAction{Name: ActionCreate, Label: i18n.NewText("Assign", "تعيين"),
		Permission: access.Allow(resource, access.Assign)}
}

// AssignmentActions returns the row actions of an assignment resource, which can be viewed and removed.
func AssignmentActions(resource access.Resource) []RowAction {
	return []RowAction{
		{Name: ActionView, Label: i18n.NewText("View", "عرض"), Permission: access.Allow(resource, access.View)},
		{Name: ActionDelete, Label: i18n.NewText("Remove", "إزالة"), Permission: access.Allow(resource, access.Remove)},
	}
}

// DetailRows renders the detail view of an entity as label and value pairs.
func (s Schema[T, P]) DetailRows(entity T, locale i18n.Locale) [][2]string {
	columns := s.Details
	if len(columns) == 0 {
		columns = s.Columns
	}
	rows := make([][2]string, 0, len(columns))
	for _, c := range columns {
		rows = append(rows, [2]string{c.Header.In(locale), c.Value(entity, locale)})
	}
	return rows
}

// Module is an entity schema bound to its store.
type Module[T Entity, P any] struct {
	Schema Schema[T, P]
	Store  *Store[T, P]
	// Resource is used directly by readers that must not disturb the store, such as option lookups.
	Resource Resource[T, P]
}

// NewModule creates a module over a resource.
func NewModule[T Entity, P any](schema Schema[T, P], resource Resource[T, P]) *Module[T, P] {
	return &Module[T, P]{
		Schema:   schema,
		Store:    NewStore(schema.Name, schema.Labels, resource, schema.Filters()),
		Resource: resource,
	}
}

// NewRESTModule creates a module whose resource calls the schema endpoint through the REST client.
func NewRESTModule[T Entity, P any](schema Schema[T, P], client rest.ClientInterface) *Module[T, P] {
	return NewModule[T, P](schema, NewRESTResource[T, P](client, schema.Endpoint))
}
