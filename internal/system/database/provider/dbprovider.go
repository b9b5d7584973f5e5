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

// Package provider opens and hands out the database clients of the admin client.
package provider

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/asgardeo/rosteradmin/internal/system/config"
	"github.com/asgardeo/rosteradmin/internal/system/database/client"
	"github.com/asgardeo/rosteradmin/internal/system/database/model"
	"github.com/asgardeo/rosteradmin/internal/system/log"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"

	// SessionDB is the name of the session database.
	SessionDB = "session"
)

// dbConfig represents the resolved driver configuration of a data source.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(ctx context.Context, dbName string) (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	home          string
	session       config.DataSource
	sessionClient client.DBClientInterface
	mu            sync.Mutex
}

// NewDBProvider creates a provider for the data sources of the given configuration.
func NewDBProvider(home string, cfg config.DatabaseConfig) DBProviderInterface {
	return &DBProvider{
		home:    home,
		session: cfg.Session,
	}
}

// GetDBClient returns the client for the named database, opening it on first use.
func (d *DBProvider) GetDBClient(ctx context.Context, dbName string) (client.DBClientInterface, error) {
	if dbName != SessionDB {
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sessionClient != nil {
		return d.sessionClient, nil
	}
	dbClient, err := d.open(ctx, d.session)
	if err != nil {
		return nil, err
	}
	d.sessionClient = dbClient
	return dbClient, nil
}

// Close closes every opened client.
func (d *DBProvider) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sessionClient == nil {
		return nil
	}
	err := d.sessionClient.Close()
	d.sessionClient = nil
	if err != nil {
		return fmt.Errorf("failed to close %s client: %w", SessionDB, err)
	}
	log.GetLogger().Debug("Database connections closed successfully")
	return nil
}

func (d *DBProvider) open(ctx context.Context, dataSource config.DataSource) (client.DBClientInterface, error) {
	dbConfig, err := d.getDBConfig(dataSource)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", SessionDB, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", SessionDB, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", SessionDB, err)
	}

	return client.NewDBClient(model.NewDB(db), dbConfig.driverName), nil
}

func (d *DBProvider) getDBConfig(dataSource config.DataSource) (dbConfig, error) {
	switch dataSource.Type {
	case dataSourceTypePostgres:
		return dbConfig{
			driverName: dataSourceTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case dataSourceTypeSQLite, "":
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if !path.IsAbs(dbPath) {
			dbPath = path.Join(d.home, dbPath)
		}
		return dbConfig{
			driverName: dataSourceTypeSQLite,
			dsn:        dbPath + options,
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}
