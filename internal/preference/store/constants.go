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

package store

import dbmodel "github.com/asgardeo/flowcomposer/internal/system/database/model"

var (
	// QueryGetPreferenceByUserAndKey retrieves a single preference value.
	QueryGetPreferenceByUserAndKey = dbmodel.DBQuery{
		ID:    "FCQ-PREF_MGT-00",
		Query: "SELECT PREF_VALUE FROM USER_PREFERENCE WHERE USER_ID = $1 AND PREF_KEY = $2",
	}
	// QueryUpsertPreference inserts a preference or replaces its value when
	// one already exists for the user and key.
	QueryUpsertPreference = dbmodel.DBQuery{
		ID: "FCQ-PREF_MGT-01",
		PostgresQuery: "INSERT INTO USER_PREFERENCE (USER_ID, PREF_KEY, PREF_VALUE) VALUES ($1, $2, $3) " +
			"ON CONFLICT (USER_ID, PREF_KEY) DO UPDATE SET PREF_VALUE = EXCLUDED.PREF_VALUE",
		SQLiteQuery: "INSERT OR REPLACE INTO USER_PREFERENCE (USER_ID, PREF_KEY, PREF_VALUE) " +
			"VALUES ($1, $2, $3)",
	}
	// QueryDeletePreferenceByUserAndKey removes a stored preference.
	QueryDeletePreferenceByUserAndKey = dbmodel.DBQuery{
		ID:    "FCQ-PREF_MGT-02",
		Query: "DELETE FROM USER_PREFERENCE WHERE USER_ID = $1 AND PREF_KEY = $2",
	}
)
