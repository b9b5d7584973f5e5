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

// Package config provides structures and functions for loading and managing client configurations.
package config

import (
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/rosteradmin/internal/system/constants"
)

// BackendConfig holds the roster backend connection details.
type BackendConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIPrefix string `yaml:"api_prefix"`
	Timeout   int    `yaml:"timeout"`
	CAFile    string `yaml:"ca_file"`
}

// UIConfig holds the presentation defaults of list and form surfaces.
type UIConfig struct {
	Locale           string `yaml:"locale"`
	PageSize         int    `yaml:"page_size"`
	SearchDebounceMs int    `yaml:"search_debounce_ms"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Session DataSource `yaml:"session"`
}

// CacheProperty holds the configuration of an individual named cache.
type CacheProperty struct {
	Name           string `yaml:"name"`
	Disabled       bool   `yaml:"disabled"`
	Size           int    `yaml:"size"`
	TTL            int    `yaml:"ttl"`
	EvictionPolicy string `yaml:"eviction_policy"`
}

// CacheConfig holds the cache configuration details.
type CacheConfig struct {
	Disabled       bool            `yaml:"disabled"`
	Type           string          `yaml:"type"`
	Size           int             `yaml:"size"`
	TTL            int             `yaml:"ttl"`
	EvictionPolicy string          `yaml:"eviction_policy"`
	Properties     []CacheProperty `yaml:"properties"`
}

// Config holds the complete configuration details of the admin client.
type Config struct {
	Backend  BackendConfig  `yaml:"backend"`
	UI       UIConfig       `yaml:"ui"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset values with the client defaults.
func (c *Config) ApplyDefaults() {
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")
	if c.Backend.APIPrefix == "" {
		c.Backend.APIPrefix = "/api"
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = constants.DefaultRequestTimeoutSeconds
	}
	if c.UI.Locale == "" {
		c.UI.Locale = "en"
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = constants.DefaultPageSize
	}
	if c.UI.PageSize > constants.MaxPageSize {
		c.UI.PageSize = constants.MaxPageSize
	}
	if c.UI.SearchDebounceMs <= 0 {
		c.UI.SearchDebounceMs = constants.DefaultSearchDebounceMillis
	}
	if c.Database.Session.Type == "" {
		c.Database.Session.Type = "sqlite"
	}
	if c.Database.Session.Type == "sqlite" && c.Database.Session.Path == "" {
		c.Database.Session.Path = "repository/database/session.db"
	}
}
