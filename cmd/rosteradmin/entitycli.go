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
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/crud"
)

// listOptions are the list filters given on the command line.
type listOptions struct {
	Search     string
	Page       int
	PageSize   int
	OrderBy    string
	Desc       bool
	Active     *bool
	Department crud.ID
	Category   crud.ID
	From       *time.Time
	To         *time.Time
}

// entityCommands are the console operations of one entity type.
type entityCommands interface {
	list(ctx context.Context, out io.Writer, opts listOptions) error
	show(ctx context.Context, out io.Writer, id crud.ID) error
	create(ctx context.Context, out io.Writer, values crud.Values) error
	update(ctx context.Context, out io.Writer, id crud.ID, values crud.Values) error
	remove(ctx context.Context, out io.Writer, id crud.ID, reason string) error
}

type entityCLI[T crud.Entity, P any] struct {
	module   *crud.Module[T, P]
	roles    access.RoleSource
	options  crud.OptionSource
	debounce time.Duration
}

func newEntityCLI[T crud.Entity, P any](module *crud.Module[T, P], roles access.RoleSource,
	options crud.OptionSource, debounce time.Duration) *entityCLI[T, P] {
	return &entityCLI[T, P]{module: module, roles: roles, options: options, debounce: debounce}
}

func (e *entityCLI[T, P]) list(ctx context.Context, out io.Writer, opts listOptions) error {
	filters := e.module.Schema.Filters()
	if opts.Search != "" {
		filters = filters.WithSearch(opts.Search)
	}
	if opts.OrderBy != "" {
		filters = filters.WithOrder(opts.OrderBy, opts.Desc)
	}
	if opts.Active != nil {
		filters = filters.WithActive(opts.Active)
	}
	if !opts.Department.IsZero() {
		filters = filters.WithDepartment(opts.Department)
	}
	if !opts.Category.IsZero() {
		filters = filters.WithCategory(opts.Category)
	}
	if opts.From != nil || opts.To != nil {
		filters = filters.WithCreatedRange(opts.From, opts.To)
	}
	if opts.PageSize > 0 {
		filters = filters.WithPageSize(opts.PageSize)
	}
	if opts.Page > 0 {
		filters = filters.WithPage(opts.Page)
	}

	controller := e.module.NewListController(crud.ControllerOptions[T]{
		Debounce: e.debounce,
		Roles:    e.roles,
		Notifier: newConsoleNotifier(out),
		Initial:  &filters,
	})
	if err := controller.Mount(ctx); err != nil {
		return err
	}
	defer controller.Close()
	controller.Wait()

	view := controller.View()
	if view.State == crud.ListErrored {
		return errors.New(view.ErrorMessage)
	}
	return renderList(out, view)
}

func (e *entityCLI[T, P]) show(ctx context.Context, out io.Writer, id crud.ID) error {
	if err := e.require(crud.ActionView); err != nil {
		return err
	}
	entity, err := e.module.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	return renderDetails(out, e.module.Schema.DetailRows(entity, currentLocale()))
}

func (e *entityCLI[T, P]) create(ctx context.Context, out io.Writer, values crud.Values) error {
	if err := e.require(crud.ActionCreate); err != nil {
		return err
	}
	var created T
	form := e.module.NewCreateForm(crud.FormOptions[T]{
		Notifier: newConsoleNotifier(out),
		Options:  e.options,
		Done:     func(entity T) { created = entity },
	})
	if err := e.fill(ctx, form, values); err != nil {
		return err
	}
	if _, err := form.Submit(ctx); err != nil {
		return err
	}
	return renderDetails(out, e.module.Schema.DetailRows(created, currentLocale()))
}

func (e *entityCLI[T, P]) update(ctx context.Context, out io.Writer, id crud.ID, values crud.Values) error {
	if err := e.require(crud.ActionEdit); err != nil {
		return err
	}
	entity, err := e.module.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	var updated T
	form, err := e.module.NewEditForm(entity, crud.FormOptions[T]{
		Notifier: newConsoleNotifier(out),
		Options:  e.options,
		Done:     func(entity T) { updated = entity },
	})
	if err != nil {
		return err
	}
	if err := e.fill(ctx, form, values); err != nil {
		return err
	}
	if _, err := form.Submit(ctx); err != nil {
		return err
	}
	return renderDetails(out, e.module.Schema.DetailRows(updated, currentLocale()))
}

func (e *entityCLI[T, P]) remove(ctx context.Context, out io.Writer, id crud.ID, reason string) error {
	controller := e.module.NewListController(crud.ControllerOptions[T]{
		Debounce: e.debounce,
		Roles:    e.roles,
		Notifier: newConsoleNotifier(out),
	})
	if err := controller.Mount(ctx); err != nil {
		return err
	}
	defer controller.Close()
	controller.Wait()

	if err := controller.RequestDelete(id); err != nil {
		return err
	}
	if err := controller.SetDeleteReason(reason); err != nil {
		return err
	}
	err := controller.ConfirmDelete(ctx)
	controller.Wait()
	return err
}

// fill loads the reference options and sets the given values in a stable order.
func (e *entityCLI[T, P]) fill(ctx context.Context, form *crud.Form[T, P], values crud.Values) error {
	if err := form.LoadOptions(ctx); err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := form.Set(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// require checks the permission of a named toolbar or row action.
func (e *entityCLI[T, P]) require(name string) error {
	role := e.roles.CurrentRole()
	actions := append(append([]crud.RowAction(nil), e.module.Schema.Toolbar...), e.module.Schema.RowActions...)
	for _, action := range actions {
		if action.Name == name {
			if role.Can(action.Permission) {
				return nil
			}
			return fmt.Errorf("%w: %s", crud.ErrActionNotPermitted, action.Permission)
		}
	}
	if name == crud.ActionEdit {
		return crud.ErrUpdateNotSupported
	}
	return fmt.Errorf("%w: %s", crud.ErrActionNotPermitted, name)
}
