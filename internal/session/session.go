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

// Package session keeps the signed-in identity of the admin client.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/asgardeo/rosteradmin/internal/access"
	"github.com/asgardeo/rosteradmin/internal/system/log"
)

const loggerComponentName = "Session"

// DefaultProfile is the profile used when none is configured.
const DefaultProfile = "default"

// Session provides the bearer token and role of the signed-in user.
// It implements rest.TokenSource and access.RoleSource.
type Session struct {
	store   TokenStoreInterface
	profile string
	now     func() time.Time

	mu     sync.RWMutex
	token  string
	claims *Claims
}

// NewSession creates a session over the token store for the given profile.
func NewSession(store TokenStoreInterface, profile string) *Session {
	if profile == "" {
		profile = DefaultProfile
	}
	return &Session{
		store:   store,
		profile: profile,
		now:     time.Now,
	}
}

// Login validates and stores a token.
func (s *Session) Login(ctx context.Context, token string) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	claims, err := ParseClaims(token)
	if err != nil {
		return nil, err
	}
	if claims.Expired(s.now()) {
		return nil, ErrSessionExpired
	}
	if err := s.store.Save(ctx, s.profile, token); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token, s.claims = token, claims
	s.mu.Unlock()

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Info("Signed in", log.String("profile", s.profile), log.String("role", claims.Role.String()))
	return claims, nil
}

// Logout forgets the stored token.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token, s.claims = "", nil
	s.mu.Unlock()
	return s.store.Clear(ctx, s.profile)
}

// Restore loads the stored token of the profile, if any.
func (s *Session) Restore(ctx context.Context) (*Claims, error) {
	token, err := s.store.Load(ctx, s.profile)
	if err != nil {
		return nil, err
	}
	claims, err := ParseClaims(token)
	if err != nil {
		return nil, fmt.Errorf("stored session token is invalid: %w", err)
	}

	s.mu.Lock()
	s.token, s.claims = token, claims
	s.mu.Unlock()

	if claims.Expired(s.now()) {
		return claims, ErrSessionExpired
	}
	return claims, nil
}

// Token returns the bearer token of the active session.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	token, claims := s.token, s.claims
	s.mu.RUnlock()

	if claims == nil {
		var err error
		if claims, err = s.Restore(ctx); err != nil && !errors.Is(err, ErrSessionExpired) {
			return "", ErrNoSession
		}
		s.mu.RLock()
		token = s.token
		s.mu.RUnlock()
	}
	if claims.Expired(s.now()) {
		return "", ErrSessionExpired
	}
	return token, nil
}

// Claims returns the claims of the active session or nil.
func (s *Session) Claims() *Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return nil
	}
	claims := *s.claims
	return &claims
}

// CurrentRole returns the role of the active session. Without a valid session the role is Unknown.
func (s *Session) CurrentRole() access.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil || s.claims.Expired(s.now()) {
		return access.Unknown
	}
	return s.claims.Role
}
