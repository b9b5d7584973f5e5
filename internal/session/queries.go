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

import dbmodel "github.com/asgardeo/rosteradmin/internal/system/database/model"

var (
	// queryCreateTokenTable creates the session token table.
	queryCreateTokenTable = dbmodel.DBQuery{
		ID: "SSQ-SESSION_MGT-00",
		Query: `CREATE TABLE IF NOT EXISTS SESSION_TOKEN (` +
			`PROFILE VARCHAR(64) PRIMARY KEY, TOKEN TEXT NOT NULL, UPDATED_AT VARCHAR(40) NOT NULL)`,
	}

	// queryGetToken is the query to get the token of a profile.
	queryGetToken = dbmodel.DBQuery{
		ID:    "SSQ-SESSION_MGT-01",
		Query: `SELECT TOKEN FROM SESSION_TOKEN WHERE PROFILE = $1`,
	}

	// queryUpsertToken is the query to store the token of a profile.
	queryUpsertToken = dbmodel.DBQuery{
		ID: "SSQ-SESSION_MGT-02",
		Query: `INSERT INTO SESSION_TOKEN (PROFILE, TOKEN, UPDATED_AT) VALUES ($1, $2, $3) ` +
			`ON CONFLICT (PROFILE) DO UPDATE SET TOKEN = excluded.TOKEN, UPDATED_AT = excluded.UPDATED_AT`,
	}

	// queryDeleteToken is the query to delete the token of a profile.
	queryDeleteToken = dbmodel.DBQuery{
		ID:    "SSQ-SESSION_MGT-03",
		Query: `DELETE FROM SESSION_TOKEN WHERE PROFILE = $1`,
	}
)
