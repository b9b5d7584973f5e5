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
	"sync"

	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/log"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

const storeLoggerComponentName = "EntityStore"

// State is a snapshot of a Store.
type State[T Entity] struct {
	Items      []T
	Pagination *Pagination
	Filters    FilterState
	Selected   *T
	Status     map[Operation]OperationStatus
}

// StatusOf returns the status of an operation.
func (s State[T]) StatusOf(op Operation) OperationStatus {
	return s.Status[op]
}

// Store is the single source of truth for one entity collection, its pagination,
// the selected entity and the status of every operation.
type Store[T Entity, P any] struct {
	name     string
	labels   Labels
	resource Resource[T, P]
	logger   *log.Logger

	mu           sync.Mutex
	state        State[T]
	listSeq      uint64
	detailSeq    uint64
	listCancel   context.CancelFunc
	detailCancel context.CancelFunc
	subscribers  map[int]func(State[T])
	nextSub      int
}

// NewStore creates a Store over the resource starting from the given filters.
func NewStore[T Entity, P any](name string, labels Labels, resource Resource[T, P],
	filters FilterState) *Store[T, P] {
	status := make(map[Operation]OperationStatus, len(Operations))
	for _, op := range Operations {
		status[op] = OperationStatus{}
	}
	return &Store[T, P]{
		name:     name,
		labels:   labels,
		resource: resource,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponentName),
			log.String(log.LoggerKeyEntity, name)),
		state: State[T]{
			Items:   []T{},
			Filters: filters.Normalize(),
			Status:  status,
		},
		subscribers: map[int]func(State[T]){},
	}
}

// Name returns the entity name of the store.
func (s *Store[T, P]) Name() string {
	return s.name
}

// Labels returns the display labels of the entity.
func (s *Store[T, P]) Labels() Labels {
	return s.labels
}

// List fetches a page of the collection and replaces the items and pagination.
// Only the last issued list request updates the store; earlier ones return ErrSuperseded.
// A failed fetch clears the items.
func (s *Store[T, P]) List(ctx context.Context, filters FilterState) (ListResult[T], error) {
	return s.startList(ctx, filters)()
}

// startList tags and publishes a list request and returns the function that performs it.
// The request order is fixed when startList returns.
func (s *Store[T, P]) startList(ctx context.Context, filters FilterState) func() (ListResult[T], error) {
	filters = filters.Normalize()

	s.mu.Lock()
	s.listSeq++
	seq := s.listSeq
	if s.listCancel != nil {
		s.listCancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.listCancel = cancel
	s.state.Filters = filters
	s.state.Status[OpList] = pending()
	s.commitLocked()

	return func() (ListResult[T], error) {
		defer cancel()
		return s.finishList(reqCtx, seq, filters)
	}
}

func (s *Store[T, P]) finishList(ctx context.Context, seq uint64, filters FilterState) (ListResult[T], error) {
	s.logger.Debug("Fetching entity list", log.String("filters", filters.Key()), log.Int64("seq", int64(seq)))
	result, err := s.resource.List(ctx, filters)

	s.mu.Lock()
	if seq != s.listSeq {
		s.mu.Unlock()
		s.logger.Debug("Discarding superseded list response", log.Int64("seq", int64(seq)))
		return ListResult[T]{}, ErrSuperseded
	}
	s.listCancel = nil
	switch {
	case err == nil:
		s.state.Items = copyItems(result.Items)
		p := result.Pagination
		s.state.Pagination = &p
		s.state.Status[OpList] = OperationStatus{}
	case rest.IsCanceled(err):
		s.state.Status[OpList] = OperationStatus{}
	default:
		info := s.labels.errorInfoFor(OpList, err)
		s.state.Items = []T{}
		s.state.Pagination = nil
		s.state.Status[OpList] = failed(info)
		err = info
		s.logger.Error("Failed to fetch entity list", log.Error(info))
	}
	s.commitLocked()
	if err != nil {
		return ListResult[T]{}, err
	}
	return result, nil
}

// Get fetches one entity into the selection. A selection for a different id is cleared
// before the request so it is never shown while loading.
func (s *Store[T, P]) Get(ctx context.Context, id ID) (T, error) {
	var zero T

	s.mu.Lock()
	s.detailSeq++
	seq := s.detailSeq
	if s.detailCancel != nil {
		s.detailCancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.detailCancel = cancel
	if s.state.Selected != nil && (*s.state.Selected).EntityID() != id {
		s.state.Selected = nil
	}
	s.state.Status[OpDetail] = pending()
	s.commitLocked()

	s.logger.Debug("Fetching entity", log.String("id", id.String()))
	entity, err := s.resource.Get(reqCtx, id)

	s.mu.Lock()
	if seq != s.detailSeq {
		s.mu.Unlock()
		s.logger.Debug("Discarding superseded detail response", log.String("id", id.String()))
		return zero, ErrSuperseded
	}
	s.detailCancel = nil
	switch {
	case err == nil:
		s.state.Selected = &entity
		s.state.Status[OpDetail] = OperationStatus{}
	case rest.IsCanceled(err):
		s.state.Status[OpDetail] = OperationStatus{}
	default:
		info := s.labels.errorInfoFor(OpDetail, err)
		s.state.Selected = nil
		s.state.Status[OpDetail] = failed(info)
		err = info
		s.logger.Error("Failed to fetch entity", log.String("id", id.String()), log.Error(info))
	}
	s.commitLocked()
	if err != nil {
		return zero, err
	}
	return entity, nil
}

// Create creates an entity. On success the entity is prepended when the first page is shown.
func (s *Store[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var zero T
	s.begin(OpCreate)

	mutation, err := s.resource.Create(ctx, payload)

	s.mu.Lock()
	if err != nil {
		info := s.fail(OpCreate, err)
		s.commitLocked()
		return zero, info
	}
	if p := s.state.Pagination; p != nil && p.Page == 1 {
		items := make([]T, 0, len(s.state.Items)+1)
		items = append(items, mutation.Entity)
		s.state.Items = append(items, s.state.Items...)
		next := p.WithTotal(p.TotalCount + 1)
		s.state.Pagination = &next
	}
	s.succeed(OpCreate, mutation.Message)
	s.logger.Debug("Entity created", log.String("id", mutation.Entity.EntityID().String()))
	s.commitLocked()
	return mutation.Entity, nil
}

// Update updates an entity and patches the matching row and selection.
func (s *Store[T, P]) Update(ctx context.Context, id ID, payload P) (T, error) {
	var zero T
	s.begin(OpUpdate)

	mutation, err := s.resource.Update(ctx, id, payload)

	s.mu.Lock()
	if err != nil {
		info := s.fail(OpUpdate, err)
		s.commitLocked()
		return zero, info
	}
	updated := mutation.Entity
	items := copyItems(s.state.Items)
	for i := range items {
		if items[i].EntityID() == id {
			items[i] = updated
		}
	}
	s.state.Items = items
	if s.state.Selected == nil || (*s.state.Selected).EntityID() == id {
		s.state.Selected = &updated
	}
	s.succeed(OpUpdate, mutation.Message)
	s.logger.Debug("Entity updated", log.String("id", id.String()))
	s.commitLocked()
	return updated, nil
}

// Delete deletes an entity with the given justification, removes it from the items,
// decrements the total count and clears the selection when it was selected.
func (s *Store[T, P]) Delete(ctx context.Context, id ID, reason string) error {
	s.begin(OpDelete)

	message, err := s.resource.Delete(ctx, id, reason)

	s.mu.Lock()
	if err != nil {
		info := s.fail(OpDelete, err)
		s.commitLocked()
		return info
	}
	items := make([]T, 0, len(s.state.Items))
	for _, item := range s.state.Items {
		if item.EntityID() != id {
			items = append(items, item)
		}
	}
	s.state.Items = items
	if p := s.state.Pagination; p != nil {
		total := p.TotalCount - 1
		if total < 0 {
			total = 0
		}
		next := p.WithTotal(total)
		s.state.Pagination = &next
	}
	if s.state.Selected != nil && (*s.state.Selected).EntityID() == id {
		s.state.Selected = nil
	}
	s.succeed(OpDelete, message)
	s.logger.Debug("Entity deleted", log.String("id", id.String()))
	s.commitLocked()
	return nil
}

// ClearSelected clears the selected entity and the detail status.
func (s *Store[T, P]) ClearSelected() {
	s.mu.Lock()
	s.state.Selected = nil
	s.state.Status[OpDetail] = OperationStatus{}
	s.commitLocked()
}

// ClearError clears the error of an operation.
func (s *Store[T, P]) ClearError(op Operation) {
	s.mu.Lock()
	status := s.state.Status[op]
	status.Error = nil
	s.state.Status[op] = status
	s.commitLocked()
}

// ClearSuccess clears the success flag and message of an operation.
func (s *Store[T, P]) ClearSuccess(op Operation) {
	s.mu.Lock()
	status := s.state.Status[op]
	status.Success = false
	status.Message = i18n.Text{}
	s.state.Status[op] = status
	s.commitLocked()
}

// ResetStatus returns an operation to idle unless it is loading.
func (s *Store[T, P]) ResetStatus(op Operation) {
	s.mu.Lock()
	if !s.state.Status[op].Loading {
		s.state.Status[op] = OperationStatus{}
	}
	s.commitLocked()
}

// Status returns the status of an operation.
func (s *Store[T, P]) Status(op Operation) OperationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Status[op]
}

// Filters returns the filters of the last list request.
func (s *Store[T, P]) Filters() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Filters.Normalize()
}

// Snapshot returns a copy of the current state.
func (s *Store[T, P]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a function called with a snapshot after every state change.
// The returned function removes the subscription.
func (s *Store[T, P]) Subscribe(fn func(State[T])) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store[T, P]) begin(op Operation) {
	s.mu.Lock()
	s.state.Status[op] = pending()
	s.commitLocked()
}

func (s *Store[T, P]) fail(op Operation, err error) *serviceerror.ErrorInfo {
	info := s.labels.errorInfoFor(op, err)
	s.state.Status[op] = failed(info)
	s.logger.Error("Entity operation failed", log.String(log.LoggerKeyOperation, string(op)), log.Error(info))
	return info
}

func (s *Store[T, P]) succeed(op Operation, message i18n.Text) {
	if message.IsZero() {
		message = s.labels.SuccessMessage(op)
	}
	s.state.Status[op] = succeeded(message)
}

// commitLocked publishes the current state and releases the lock.
func (s *Store[T, P]) commitLocked() {
	snapshot := s.snapshotLocked()
	subscribers := make([]func(State[T]), 0, len(s.subscribers))
	for id := 0; id < s.nextSub; id++ {
		if fn, ok := s.subscribers[id]; ok {
			subscribers = append(subscribers, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(snapshot)
	}
}

func (s *Store[T, P]) snapshotLocked() State[T] {
	snapshot := State[T]{
		Items:   copyItems(s.state.Items),
		Filters: s.state.Filters.Normalize(),
		Status:  make(map[Operation]OperationStatus, len(s.state.Status)),
	}
	if s.state.Pagination != nil {
		p := *s.state.Pagination
		snapshot.Pagination = &p
	}
	if s.state.Selected != nil {
		e := *s.state.Selected
		snapshot.Selected = &e
	}
	for op, status := range s.state.Status {
		snapshot.Status[op] = status
	}
	return snapshot
}

func copyItems[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
