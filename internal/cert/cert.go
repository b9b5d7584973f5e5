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

package cert

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
	"path"

	"github.com/asgardeo/rosteradmin/internal/system/config"
)

// GetTLSConfig builds the TLS configuration used to reach the roster backend.
// A nil configuration is returned when no CA bundle is configured.
func GetTLSConfig(cfg *config.Config, currentDirectory string) (*tls.Config, error) {
	if cfg.Backend.CAFile == "" {
		return nil, nil
	}

	caFilePath := cfg.Backend.CAFile
	if !path.IsAbs(caFilePath) {
		caFilePath = path.Join(currentDirectory, caFilePath)
	}

	// Check if the CA bundle exists.
	if _, err := os.Stat(caFilePath); os.IsNotExist(err) {
		return nil, errors.New("CA file not found at " + caFilePath)
	}

	pemData, err := os.ReadFile(caFilePath)
	if err != nil {
		return nil, err
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pemData) {
		return nil, errors.New("no certificates found in " + caFilePath)
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}
