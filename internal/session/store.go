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

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/database/client"
	"github.com/asgardeo/rosteradmin/internal/system/log"
)

// TokenStoreInterface persists session tokens per profile.
type TokenStoreInterface interface {
	Load(ctx context.Context, profile string) (string, error)
	Save(ctx context.Context, profile, token string) error
	Clear(ctx context.Context, profile string) error
}

// DBTokenStore stores session tokens in the session database.
type DBTokenStore struct {
	dbClient client.DBClientInterface
	now      func() time.Time
}

// NewDBTokenStore creates the token store and ensures its table exists.
func NewDBTokenStore(ctx context.Context, dbClient client.DBClientInterface) (*DBTokenStore, error) {
	if _, err := dbClient.Execute(ctx, queryCreateTokenTable); err != nil {
		return nil, fmt.Errorf("failed to prepare session table: %w", err)
	}
	return &DBTokenStore{dbClient: dbClient, now: time.Now}, nil
}

// Load returns the token of the profile or ErrNoSession.
func (s *DBTokenStore) Load(ctx context.Context, profile string) (string, error) {
	results, err := s.dbClient.Query(ctx, queryGetToken, profile)
	if err != nil {
		return "", fmt.Errorf("failed to load session token: %w", err)
	}
	if len(results) == 0 {
		return "", ErrNoSession
	}

	switch token := results[0]["token"].(type) {
	case string:
		return token, nil
	case []byte:
		return string(token), nil
	default:
		return "", fmt.Errorf("unexpected type for token column: %T", results[0]["token"])
	}
}

// Save stores the token of the profile, replacing any previous token.
func (s *DBTokenStore) Save(ctx context.Context, profile, token string) error {
	updatedAt := s.now().UTC().Format(time.RFC3339)
	if _, err := s.dbClient.Execute(ctx, queryUpsertToken, profile, token, updatedAt); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	log.GetLogger().Debug("Session token stored", log.String("profile", profile),
		log.String("token", log.MaskString(token)))
	return nil
}

// Clear removes the token of the profile.
func (s *DBTokenStore) Clear(ctx context.Context, profile string) error {
	if _, err := s.dbClient.Execute(ctx, queryDeleteToken, profile); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// MemoryTokenStore keeps session tokens in memory.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]string)}
}

// Load returns the token of the profile or ErrNoSession.
func (s *MemoryTokenStore) Load(_ context.Context, profile string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[profile]
	if !ok {
		return "", ErrNoSession
	}
	return token, nil
}

// Save stores the token of the profile.
func (s *MemoryTokenStore) Save(_ context.Context, profile, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[profile] = token
	return nil
}

// Clear removes the token of the profile.
func (s *MemoryTokenStore) Clear(_ context.Context, profile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, profile)
	return nil
}
