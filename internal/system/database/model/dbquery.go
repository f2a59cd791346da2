/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

package model

// DBQuery represents a database query with per-driver variants.
type DBQuery struct {
	// ID is the unique identifier of the query, used for logging and tracing.
	ID string
	// Query is the default SQL statement used when no driver-specific variant is set.
	Query string
	// PostgresQuery is the PostgreSQL-specific variant of the query.
	PostgresQuery string
	// SQLiteQuery is the SQLite-specific variant of the query.
	SQLiteQuery string
}

// GetID returns the unique identifier of the query.
func (q DBQuery) GetID() string {
	return q.ID
}

// GetQuery returns the SQL statement for the given database type.
func (q DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case "postgres":
		if q.PostgresQuery != "" {
			return q.PostgresQuery
		}
	case "sqlite":
		if q.SQLiteQuery != "" {
			return q.SQLiteQuery
		}
	}
	return q.Query
}
