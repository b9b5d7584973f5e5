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
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/asgardeo/rosteradmin/internal/access"
)

const (
	msRoleClaim = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	msNameClaim = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
)

// Claims are the identity claims carried by a session token.
type Claims struct {
	Subject   string
	Name      string
	Email     string
	RoleName  string
	Role      access.Role
	ExpiresAt time.Time
}

// ParseClaims reads the claims of a bearer token without verifying its signature.
// Signature verification is the backend's concern; the client only needs the identity hints.
func ParseClaims(token string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims := &Claims{
		Subject: stringClaim(mapClaims, "sub"),
		Name:    firstClaim(mapClaims, "name", "unique_name", msNameClaim),
		Email:   stringClaim(mapClaims, "email"),
	}
	claims.RoleName = firstClaim(mapClaims, "role", "roles", msRoleClaim)
	claims.Role = access.ParseRole(claims.RoleName)

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

// Expired reports whether the claims are expired at the given time. Tokens without exp never expire.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

func stringClaim(claims jwt.MapClaims, name string) string {
	switch v := claims[name].(type) {
	case string:
		return v
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func firstClaim(claims jwt.MapClaims, names ...string) string {
	for _, name := range names {
		if v := stringClaim(claims, name); v != "" {
			return v
		}
	}
	return ""
}

var (
	// ErrNoSession is returned when no session token is stored.
	ErrNoSession = errors.New("no active session")
	// ErrSessionExpired is returned when the stored session token has expired. It wraps ErrNoSession.
	ErrSessionExpired = fmt.Errorf("session has expired: %w", ErrNoSession)
)
