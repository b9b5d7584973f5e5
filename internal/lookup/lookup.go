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

// Package lookup provides cached option lists for reference fields.
package lookup

import (
	"context"
	"errors"
	"sync"

	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/cache"
	"github.com/asgardeo/rosteradmin/internal/system/config"
	"github.com/asgardeo/rosteradmin/internal/system/constants"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/log"
)

// Option kinds used by reference fields.
const (
	Departments       = "departments"
	Categories        = "categories"
	ScientificDegrees = "scientificdegrees"
	Doctors           = "doctors"
)

// CacheName is the name of the options cache in the deployment configuration.
const CacheName = "LookupOptionsCache"

// ErrUnknownKind is returned for an option kind without a registered lister.
var ErrUnknownKind = errors.New("unknown lookup kind")

// Lister fetches the options of one kind.
type Lister func(ctx context.Context) ([]crud.Option, error)

// maxPages bounds the pages read for one option list.
const maxPages = 100

// FromResource lists the active entities of a resource as options, reading every page.
func FromResource[T crud.Entity, P any](resource crud.Resource[T, P]) Lister {
	filters := crud.DefaultFilters().WithPageSize(constants.MaxPageSize).WithActive(boolPtr(true))
	return func(ctx context.Context) ([]crud.Option, error) {
		var options []crud.Option
		for page := 1; page <= maxPages; page++ {
			result, err := resource.List(ctx, filters.WithPage(page))
			if err != nil {
				return nil, err
			}
			for _, item := range result.Items {
				options = append(options, crud.Option{
					ID:    item.EntityID(),
					Label: i18n.NewText(item.DisplayName(i18n.English), item.DisplayName(i18n.Arabic)),
				})
			}
			if !result.Pagination.HasNextPage || len(result.Items) == 0 {
				break
			}
		}
		if options == nil {
			options = []crud.Option{}
		}
		return options, nil
	}
}

// Service serves options per kind from the cache, falling back to the registered listers.
type Service struct {
	mu      sync.RWMutex
	listers map[string]Lister
	cache   cache.CacheInterface[[]crud.Option]
	logger  *log.Logger
}

// NewService creates a lookup service with the options cache described by the configuration.
func NewService(cacheConfig config.CacheConfig) *Service {
	return &Service{
		listers: map[string]Lister{},
		cache:   cache.NewCache[[]crud.Option](cacheConfig, CacheName),
		logger:  log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LookupService")),
	}
}

// Register sets the lister of a kind and drops any cached options for it.
func (s *Service) Register(kind string, lister Lister) {
	s.mu.Lock()
	s.listers[kind] = lister
	s.mu.Unlock()
	s.Invalidate(kind)
}

// Options implements crud.OptionSource.
func (s *Service) Options(ctx context.Context, kind string) ([]crud.Option, error) {
	key := cache.CacheKey{Key: kind}
	if options, ok := s.cache.Get(key); ok {
		return copyOptions(options), nil
	}

	s.mu.RLock()
	lister, ok := s.listers[kind]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownKind
	}

	options, err := lister(ctx)
	if err != nil {
		s.logger.Debug("Failed to load options", log.String("kind", kind), log.Error(err))
		return nil, err
	}
	s.cache.Set(key, copyOptions(options))
	s.logger.Debug("Loaded options", log.String("kind", kind), log.Int("count", len(options)))
	return options, nil
}

// Invalidate drops the cached options of a kind.
func (s *Service) Invalidate(kind string) {
	s.cache.Delete(cache.CacheKey{Key: kind})
}

// InvalidateOn drops the options of kind whenever a create, update or delete on the store succeeds.
// The returned function stops watching.
func InvalidateOn[T crud.Entity, P any](s *Service, store *crud.Store[T, P], kind string) func() {
	var mu sync.Mutex
	seen := map[crud.Operation]bool{}
	return store.Subscribe(func(state crud.State[T]) {
		mu.Lock()
		defer mu.Unlock()
		for _, op := range []crud.Operation{crud.OpCreate, crud.OpUpdate, crud.OpDelete} {
			success := state.StatusOf(op).Success
			if success && !seen[op] {
				s.Invalidate(kind)
			}
			seen[op] = success
		}
	})
}

func copyOptions(options []crud.Option) []crud.Option {
	return append([]crud.Option(nil), options...)
}

func boolPtr(b bool) *bool {
	return &b
}
