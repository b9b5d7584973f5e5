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

package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

// RosterRuntime holds the resolved runtime settings of the admin client.
type RosterRuntime struct {
	RosterHome     string
	Config         Config
	Locale         i18n.Locale
	RequestTimeout time.Duration
	SearchDebounce time.Duration
}

var (
	runtimeConfig *RosterRuntime
	once          sync.Once
)

// InitializeRosterRuntime resolves the runtime settings from the home directory and the
// configuration. Only the first successful call takes effect.
func InitializeRosterRuntime(rosterHome string, config *Config) error {
	if config == nil {
		return errors.New("configuration is required")
	}
	if rosterHome == "" {
		return errors.New("roster home is required")
	}
	home, err := filepath.Abs(rosterHome)
	if err != nil {
		return err
	}

	once.Do(func() {
		resolved := *config
		resolved.ApplyDefaults()
		runtimeConfig = &RosterRuntime{
			RosterHome:     home,
			Config:         resolved,
			Locale:         i18n.ParseLocale(resolved.UI.Locale),
			RequestTimeout: time.Duration(resolved.Backend.Timeout) * time.Second,
			SearchDebounce: time.Duration(resolved.UI.SearchDebounceMs) * time.Millisecond,
		}
	})
	return nil
}

// GetRosterRuntime returns the runtime settings. It panics when they are not initialized.
func GetRosterRuntime() *RosterRuntime {
	if runtimeConfig == nil {
		panic("RosterRuntime is not initialized")
	}
	return runtimeConfig
}

// ResolvePath returns the path relative to the roster home, or the path itself when absolute.
func (r *RosterRuntime) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.RosterHome, path)
}

// ResetRosterRuntime resets the RosterRuntime.
// This should only be used in tests to reset the singleton state.
func ResetRosterRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
