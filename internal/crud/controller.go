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
	"strings"
	"sync"
	"time"

	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/system/constants"
	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/log"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

const controllerLoggerComponentName = "EntityListController"

// ListState is the state of a list surface.
type ListState int

const (
	// ListIdle has not fetched yet.
	ListIdle ListState = iota
	// ListLoading is waiting for a list response.
	ListLoading
	// ListPopulated shows the latest page.
	ListPopulated
	// ListErrored shows the error of the latest fetch. It never retries on its own.
	ListErrored
)

// String returns the state name.
func (s ListState) String() string {
	switch s {
	case ListLoading:
		return "loading"
	case ListPopulated:
		return "populated"
	case ListErrored:
		return "errored"
	default:
		return "idle"
	}
}

// ControllerOptions configures a ListController.
type ControllerOptions[T Entity] struct {
	// Debounce is the quiet period before search input is committed.
	Debounce time.Duration
	Roles    access.RoleSource
	Notifier Notifier
	// OnChange is called with the new view after every change while mounted. Views are
	// delivered one at a time and may be coalesced. It must not call the controller
	// synchronously.
	OnChange func(view ListView[T])
	// Initial replaces the entity default filters on mount.
	Initial *FilterState
}

// Row is one rendered list row.
type Row[T Entity] struct {
	ID      ID
	Entity  T
	Title   string
	Cells   []string
	Actions []RowAction
}

// DeleteConfirmation is the state of the delete confirmation modal.
type DeleteConfirmation struct {
	Open        bool
	ID          ID
	DisplayName string
	Reason      string
	Remaining   int
	Error       string
	Errors      []string
	Submitting  bool
}

// ListView is everything needed to render a list surface.
type ListView[T Entity] struct {
	State        ListState
	Locale       i18n.Locale
	Direction    i18n.Direction
	Title        string
	Headers      []string
	SearchInput  string
	Filters      FilterState
	Rows         []Row[T]
	Pagination   *Pagination
	Links        PageLinks
	From         int
	To           int
	Error        *serviceerror.ErrorInfo
	ErrorMessage string
	Toolbar      []RowAction
	Delete       DeleteConfirmation
}

type deleteState struct {
	open       bool
	id         ID
	name       string
	reason     string
	message    string
	errors     []string
	submitting bool
}

// ListController turns filter, search and page interaction into store list calls and
// renders the store collection.
type ListController[T Entity, P any] struct {
	module   *Module[T, P]
	debounce time.Duration
	roles    access.RoleSource
	notifier Notifier
	onChange func(view ListView[T])
	initial  *FilterState
	logger   *log.Logger

	applyMu     sync.Mutex
	mu          sync.Mutex
	mounted     bool
	ctx         context.Context
	cancel      context.CancelFunc
	filters     FilterState
	searchInput string
	timer       *time.Timer
	fetched     bool
	unsubscribe func()
	del         deleteState
	inflight    int
	idle        *sync.Cond
	rendering   bool
	dirty       bool
}

// NewListController creates a list controller for the module.
func (m *Module[T, P]) NewListController(opts ControllerOptions[T]) *ListController[T, P] {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = constants.DefaultSearchDebounceMillis * time.Millisecond
	}
	roles := opts.Roles
	if roles == nil {
		roles = access.StaticRole(access.Unknown)
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	c := &ListController[T, P]{
		module:   m,
		debounce: debounce,
		roles:    roles,
		notifier: notifier,
		onChange: opts.OnChange,
		initial:  opts.Initial,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, controllerLoggerComponentName),
			log.String(log.LoggerKeyEntity, m.Schema.Name)),
		filters: m.Schema.Filters(),
	}
	c.idle = sync.NewCond(&c.mu)
	return c
}

// Mount starts the controller and fetches the first page with the initial or default filters.
func (c *ListController[T, P]) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return nil
	}
	c.mounted = true
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.filters = c.module.Schema.Filters()
	if c.initial != nil {
		c.filters = c.initial.Normalize()
	}
	c.searchInput = c.filters.Search
	c.fetched = false
	c.del = deleteState{}
	c.unsubscribe = c.module.Store.Subscribe(func(State[T]) { c.render() })
	filters := c.filters
	c.mu.Unlock()

	c.logger.Debug("List controller mounted")
	return c.apply(filters, true)
}

// Close stops the controller. In-flight requests no longer update its view.
func (c *ListController[T, P]) Close() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.cancel()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	unsubscribe()
	c.logger.Debug("List controller closed")
}

// Wait blocks until no fetch is in flight. Fetches issued while waiting extend the wait.
func (c *ListController[T, P]) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.inflight > 0 {
		c.idle.Wait()
	}
}

// Filters returns the committed filters.
func (c *ListController[T, P]) Filters() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetSearchInput updates the search input. It is committed after the debounce period.
func (c *ListController[T, P]) SetSearchInput(text string) error {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	c.searchInput = text
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		if err := c.FlushSearch(); err != nil && !errors.Is(err, ErrNotMounted) {
			c.logger.Warn("Failed to commit search input", log.Error(err))
		}
	})
	c.mu.Unlock()
	c.render()
	return nil
}

// FlushSearch commits the pending search input immediately.
func (c *ListController[T, P]) FlushSearch() error {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if strings.TrimSpace(c.searchInput) == strings.TrimSpace(c.filters.Search) {
		c.mu.Unlock()
		return nil
	}
	next := c.filters.WithSearch(c.searchInput)
	c.mu.Unlock()
	return c.apply(next, false)
}

// SetPage moves to a page. The page is clamped to the known page range.
func (c *ListController[T, P]) SetPage(page int) error {
	if p := c.module.Store.Snapshot().Pagination; p != nil && page > p.TotalPages {
		page = p.TotalPages
	}
	return c.update(func(f FilterState) FilterState { return f.WithPage(page) })
}

// SetPageSize changes the page size and returns to the first page.
func (c *ListController[T, P]) SetPageSize(size int) error {
	return c.update(func(f FilterState) FilterState { return f.WithPageSize(size) })
}

// SetOrder changes the ordering.
func (c *ListController[T, P]) SetOrder(field string, desc bool) error {
	return c.update(func(f FilterState) FilterState { return f.WithOrder(field, desc) })
}

// SetActive filters on the active flag.
func (c *ListController[T, P]) SetActive(active *bool) error {
	return c.update(func(f FilterState) FilterState { return f.WithActive(active) })
}

// SetCategory filters on a category.
func (c *ListController[T, P]) SetCategory(id ID) error {
	return c.update(func(f FilterState) FilterState { return f.WithCategory(id) })
}

// SetDepartment filters on a department.
func (c *ListController[T, P]) SetDepartment(id ID) error {
	return c.update(func(f FilterState) FilterState { return f.WithDepartment(id) })
}

// SetCreatedRange filters on the creation date.
func (c *ListController[T, P]) SetCreatedRange(from, to *time.Time) error {
	return c.update(func(f FilterState) FilterState { return f.WithCreatedRange(from, to) })
}

// SetInclude toggles an include flag.
func (c *ListController[T, P]) SetInclude(name string, on bool) error {
	return c.update(func(f FilterState) FilterState { return f.WithInclude(name, on) })
}

// ClearFilters restores the default filters of the entity.
func (c *ListController[T, P]) ClearFilters() error {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	defaults := c.module.Schema.Filters()
	c.searchInput = defaults.Search
	c.mu.Unlock()
	return c.apply(defaults, false)
}

// Refresh fetches the current filters again.
func (c *ListController[T, P]) Refresh() error {
	return c.apply(c.Filters(), true)
}

// Retry fetches the current filters again when the last fetch failed.
func (c *ListController[T, P]) Retry() error {
	if c.State() != ListErrored {
		return nil
	}
	return c.Refresh()
}

// State returns the derived state of the list surface.
func (c *ListController[T, P]) State() ListState {
	c.mu.Lock()
	fetched := c.fetched
	c.mu.Unlock()
	return deriveState(fetched, c.module.Store.Snapshot())
}

// View returns the render state of the list surface.
func (c *ListController[T, P]) View() ListView[T] {
	locale := i18n.CurrentLocale()
	role := c.roles.CurrentRole()
	schema := c.module.Schema
	snapshot := c.module.Store.Snapshot()

	c.mu.Lock()
	view := ListView[T]{
		State:       deriveState(c.fetched, snapshot),
		Locale:      locale,
		Direction:   locale.Direction(),
		Title:       schema.Labels.Plural.In(locale),
		SearchInput: c.searchInput,
		Filters:     c.filters,
		Toolbar:     allowed(role, schema.Toolbar),
		Delete: DeleteConfirmation{
			Open:        c.del.open,
			ID:          c.del.id,
			DisplayName: c.del.name,
			Reason:      c.del.reason,
			Remaining:   schema.DeleteReason.Remaining(c.del.reason),
			Error:       c.del.message,
			Errors:      append([]string(nil), c.del.errors...),
			Submitting:  c.del.submitting,
		},
	}
	c.mu.Unlock()

	for _, column := range schema.Columns {
		view.Headers = append(view.Headers, column.Header.In(locale))
	}
	actions := allowed(role, schema.RowActions)
	view.Rows = make([]Row[T], 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		row := Row[T]{
			ID:      item.EntityID(),
			Entity:  item,
			Title:   item.DisplayName(locale),
			Actions: actions,
		}
		for _, column := range schema.Columns {
			row.Cells = append(row.Cells, column.Value(item, locale))
		}
		view.Rows = append(view.Rows, row)
	}
	if p := snapshot.Pagination; p != nil {
		view.Pagination = p
		view.Links = p.Links()
		view.From, view.To = p.Range(len(view.Rows))
	}
	if info := snapshot.StatusOf(OpList).Error; info != nil {
		view.Error = info
		view.ErrorMessage = info.Localized(locale, schema.Labels.FailureMessage(OpList, info.Status))
	}
	return view
}

// RequestDelete opens the delete confirmation for an entity. Nothing is sent until it is confirmed.
func (c *ListController[T, P]) RequestDelete(id ID) error {
	if !c.roles.CurrentRole().Can(c.module.Schema.deletePermission()) {
		return ErrActionNotPermitted
	}
	name := id.String()
	for _, item := range c.module.Store.Snapshot().Items {
		if item.EntityID() == id {
			name = item.DisplayName(i18n.CurrentLocale())
			break
		}
	}
	c.module.Store.ResetStatus(OpDelete)

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	c.del = deleteState{open: true, id: id, name: name}
	c.mu.Unlock()
	c.render()
	return nil
}

// SetDeleteReason updates the justification of the open delete confirmation.
func (c *ListController[T, P]) SetDeleteReason(reason string) error {
	c.mu.Lock()
	if !c.del.open {
		c.mu.Unlock()
		return ErrNoDeleteTarget
	}
	c.del.reason = reason
	c.del.message = ""
	c.del.errors = nil
	c.mu.Unlock()
	c.render()
	return nil
}

// ConfirmDelete validates the reason and deletes the entity. The confirmation closes on
// success and stays open with the error on failure.
func (c *ListController[T, P]) ConfirmDelete(ctx context.Context) error {
	locale := i18n.CurrentLocale()
	schema := c.module.Schema

	c.mu.Lock()
	if !c.del.open {
		c.mu.Unlock()
		return ErrNoDeleteTarget
	}
	if c.del.submitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	if fe := schema.DeleteReason.Validate("reason", c.del.reason); fe != nil {
		c.del.message = fe.Message.In(locale)
		c.mu.Unlock()
		c.render()
		return &ValidationError{Fields: []FieldError{*fe}}
	}
	c.del.submitting = true
	c.del.message = ""
	c.del.errors = nil
	id, reason := c.del.id, strings.TrimSpace(c.del.reason)
	c.mu.Unlock()
	c.render()

	err := c.module.Store.Delete(ctx, id, reason)

	c.mu.Lock()
	c.del.submitting = false
	if err != nil {
		var info *serviceerror.ErrorInfo
		if !errors.As(err, &info) {
			info = schema.Labels.errorInfoFor(OpDelete, err)
		}
		fallback := schema.Labels.FailureMessage(OpDelete, info.Status)
		c.del.message = info.Localized(locale, fallback)
		c.del.errors = append([]string(nil), info.Errors...)
		c.mu.Unlock()
		c.notifier.Alert(newErrorDialog(info, locale, errorDialogTitle, fallback))
		c.render()
		return err
	}
	c.del = deleteState{}
	page := c.filters.Page
	c.mu.Unlock()

	message := c.module.Store.Status(OpDelete).Message
	if message.IsZero() {
		message = schema.Labels.SuccessMessage(OpDelete)
	}
	c.notifier.Success(message.In(locale))

	snapshot := c.module.Store.Snapshot()
	if p := snapshot.Pagination; p != nil && len(snapshot.Items) == 0 && page > p.TotalPages {
		return c.SetPage(p.TotalPages)
	}
	c.render()
	return nil
}

// CancelDelete closes the delete confirmation without deleting.
func (c *ListController[T, P]) CancelDelete() {
	c.mu.Lock()
	c.del = deleteState{}
	c.mu.Unlock()
	c.module.Store.ResetStatus(OpDelete)
	c.render()
}

func (c *ListController[T, P]) update(change func(FilterState) FilterState) error {
	c.mu.Lock()
	next := change(c.filters)
	c.mu.Unlock()
	return c.apply(next, false)
}

// apply commits new filters and fetches them unless they are unchanged.
func (c *ListController[T, P]) apply(next FilterState, force bool) error {
	next = next.Normalize()
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	if !force && c.fetched && next.Equal(c.filters) {
		c.mu.Unlock()
		return nil
	}
	c.filters = next
	c.fetched = true
	ctx := c.ctx
	c.inflight++
	c.mu.Unlock()

	run := c.module.Store.startList(ctx, next)
	go func() {
		defer c.fetchDone()
		_, err := run()
		switch {
		case err == nil, errors.Is(err, ErrSuperseded), rest.IsCanceled(err):
		default:
			c.logger.Debug("List fetch failed", log.Error(err))
		}
	}()
	return nil
}

func (c *ListController[T, P]) fetchDone() {
	c.mu.Lock()
	c.inflight--
	if c.inflight == 0 {
		c.idle.Broadcast()
	}
	c.mu.Unlock()
}

// render delivers views one at a time. A change made while a view is being delivered
// marks the controller dirty and the delivering goroutine builds a fresh view, so the
// last view delivered always reflects the last change.
func (c *ListController[T, P]) render() {
	if c.onChange == nil {
		return
	}
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.dirty = true
	if c.rendering {
		c.mu.Unlock()
		return
	}
	c.rendering = true
	c.mu.Unlock()

	for {
		c.mu.Lock()
		if !c.dirty || !c.mounted {
			c.rendering = false
			c.mu.Unlock()
			return
		}
		c.dirty = false
		c.mu.Unlock()
		c.onChange(c.View())
	}
}

func deriveState[T Entity](fetched bool, snapshot State[T]) ListState {
	status := snapshot.StatusOf(OpList)
	switch {
	case !fetched:
		return ListIdle
	case status.Loading:
		return ListLoading
	case status.Error != nil:
		return ListErrored
	case snapshot.Pagination != nil:
		return ListPopulated
	default:
		return ListIdle
	}
}

func allowed(role access.Role, actions []RowAction) []RowAction {
	out := make([]RowAction, 0, len(actions))
	for _, a := range actions {
		if role.Can(a.Permission) {
			out = append(out, a)
		}
	}
	return out
}
