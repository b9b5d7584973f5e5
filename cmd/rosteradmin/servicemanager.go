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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/asgardeo/rosteradmin/internal/cert"
	"github.com/asgardeo/rosteradmin/internal/category"
	"github.com/asgardeo/rosteradmin/internal/categoryhead"
	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/department"
	"github.com/asgardeo/rosteradmin/internal/doctor"
	"github.com/asgardeo/rosteradmin/internal/lookup"
	"github.com/asgardeo/rosteradmin/internal/manager"
	"github.com/asgardeo/rosteradmin/internal/scientificdegree"
	"github.com/asgardeo/rosteradmin/internal/session"
	"github.com/asgardeo/rosteradmin/internal/system/config"
	"github.com/asgardeo/rosteradmin/internal/system/database/provider"
	httpservice "github.com/asgardeo/rosteradmin/internal/system/http"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// serviceManager wires the session, transport, lookups and entity modules of the client.
type serviceManager struct {
	cfg        *config.Config
	dbProvider provider.DBProviderInterface
	session    *session.Session
	client     *rest.Client
	lookups    *lookup.Service
	entities   map[string]entityCommands
	stops      []func()
}

// newServiceManager creates a service manager from the runtime settings whose session is kept
// in the session database.
func newServiceManager(ctx context.Context, runtime *config.RosterRuntime, profile string) (*serviceManager, error) {
	cfg, home := &runtime.Config, runtime.RosterHome
	if err := ensureSessionDir(cfg.Database.Session, runtime); err != nil {
		return nil, err
	}
	dbProvider := provider.NewDBProvider(home, cfg.Database)
	dbClient, err := dbProvider.GetDBClient(ctx, provider.SessionDB)
	if err != nil {
		return nil, err
	}
	store, err := session.NewDBTokenStore(ctx, dbClient)
	if err != nil {
		_ = dbProvider.Close()
		return nil, err
	}
	sm, err := newServiceManagerWithStore(cfg, home, store, profile)
	if err != nil {
		_ = dbProvider.Close()
		return nil, err
	}
	sm.dbProvider = dbProvider
	return sm, nil
}

// newServiceManagerWithStore creates a service manager over the given token store.
func newServiceManagerWithStore(cfg *config.Config, home string, store session.TokenStoreInterface,
	profile string) (*serviceManager, error) {
	tlsConfig, err := cert.GetTLSConfig(cfg, home)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS configuration: %w", err)
	}
	httpClient := httpservice.NewHTTPClientWithTLS(time.Duration(cfg.Backend.Timeout)*time.Second, tlsConfig)
	sess := session.NewSession(store, profile)

	sm := &serviceManager{
		cfg:      cfg,
		session:  sess,
		client:   rest.NewClient(cfg.Backend.BaseURL, cfg.Backend.APIPrefix, httpClient, sess),
		lookups:  lookup.NewService(cfg.Cache),
		entities: map[string]entityCommands{},
	}
	sm.registerServices()
	return sm, nil
}

// registerServices creates the entity modules and binds their option lookups.
func (sm *serviceManager) registerServices() {
	departments := department.Initialize(sm.client)
	degrees := scientificdegree.Initialize(sm.client)
	categories := category.Initialize(sm.client)
	doctors := doctor.Initialize(sm.client)
	managers := manager.Initialize(sm.client)
	heads := categoryhead.Initialize(sm.client)

	sm.lookups.Register(lookup.Departments, lookup.FromResource(departments.Resource))
	sm.lookups.Register(lookup.ScientificDegrees, lookup.FromResource(degrees.Resource))
	sm.lookups.Register(lookup.Categories, lookup.FromResource(categories.Resource))
	sm.lookups.Register(lookup.Doctors, lookup.FromResource(doctors.Resource))
	sm.stops = append(sm.stops,
		lookup.InvalidateOn(sm.lookups, departments.Store, lookup.Departments),
		lookup.InvalidateOn(sm.lookups, degrees.Store, lookup.ScientificDegrees),
		lookup.InvalidateOn(sm.lookups, categories.Store, lookup.Categories),
		lookup.InvalidateOn(sm.lookups, doctors.Store, lookup.Doctors),
	)

	register(sm, departments)
	register(sm, degrees)
	register(sm, categories)
	register(sm, doctors)
	register(sm, managers)
	register(sm, heads)
}

func register[T crud.Entity, P any](sm *serviceManager, module *crud.Module[T, P]) {
	debounce := time.Duration(sm.cfg.UI.SearchDebounceMs) * time.Millisecond
	sm.entities[module.Schema.Name] = newEntityCLI(module, sm.session, sm.lookups, debounce)
}

// entity returns the commands of a named entity.
func (sm *serviceManager) entity(name string) (entityCommands, error) {
	commands, ok := sm.entities[name]
	if !ok {
		return nil, fmt.Errorf("unknown entity %q, expected one of %v", name, sm.entityNames())
	}
	return commands, nil
}

func (sm *serviceManager) entityNames() []string {
	names := make([]string, 0, len(sm.entities))
	for name := range sm.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// close releases the subscriptions and database connections.
func (sm *serviceManager) close() error {
	for _, stop := range sm.stops {
		stop()
	}
	sm.stops = nil
	if sm.dbProvider != nil {
		return sm.dbProvider.Close()
	}
	return nil
}

func ensureSessionDir(ds config.DataSource, runtime *config.RosterRuntime) error {
	if ds.Type != "sqlite" || ds.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(runtime.ResolvePath(ds.Path)), 0o750); err != nil {
		return fmt.Errorf("failed to create session database directory: %w", err)
	}
	return nil
}
