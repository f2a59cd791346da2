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

package client

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/asgardeo/flowcomposer/internal/system/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := model.NewDB(suite.mockDB)
	suite.dbClient = NewDBClient(db, "mock")
}

func (suite *DBClientTestSuite) TearDownTest() {
	if suite.mock != nil {
		if err := suite.mock.ExpectationsWereMet(); err != nil {
			suite.T().Fatalf("There were unfulfilled expectations: %v", err)
		}
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	testQuery := model.DBQuery{
		ID:    "test_query_success",
		Query: "SELECT pref_key, pref_value FROM user_preference WHERE user_id = ?",
	}
	args := []interface{}{"user-1"}
	mockArgs := []driver.Value{"user-1"}

	columns := []string{"PREF_KEY", "PREF_VALUE"}
	rows := sqlmock.NewRows(columns).
		AddRow("loginFlow.preferredEditor", "visual").
		AddRow("console.theme", "dark")
	suite.mock.ExpectQuery("SELECT pref_key, pref_value FROM user_preference WHERE user_id = ?").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	// Column names are normalized to lowercase regardless of driver casing.
	assert.Equal(suite.T(), "loginFlow.preferredEditor", results[0]["pref_key"])
	assert.Equal(suite.T(), "visual", results[0]["pref_value"])
	assert.Equal(suite.T(), "dark", results[1]["pref_value"])
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	testQuery := model.DBQuery{
		ID:    "test_query_empty",
		Query: "SELECT pref_value FROM user_preference WHERE user_id = ?",
	}
	args := []interface{}{"missing-user"}
	mockArgs := []driver.Value{"missing-user"}

	rows := sqlmock.NewRows([]string{"pref_value"})
	suite.mock.ExpectQuery("SELECT pref_value FROM user_preference WHERE user_id = ?").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_query_error",
		Query: "SELECT pref_value FROM non_existent_table",
	}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectQuery("SELECT pref_value FROM non_existent_table").
		WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(testQuery)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), results)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	testQuery := model.DBQuery{
		ID:    "test_execute_success",
		Query: "UPDATE user_preference SET pref_value = ? WHERE user_id = ?",
	}
	args := []interface{}{"classic", "user-1"}
	mockArgs := []driver.Value{"classic", "user-1"}

	suite.mock.ExpectExec("UPDATE user_preference SET pref_value = \\? WHERE user_id = \\?").
		WithArgs(mockArgs...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rowsAffected, err := suite.dbClient.Execute(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), rowsAffected)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestExecuteDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_execute_error",
		Query: "DELETE FROM user_preference WHERE user_id = ?",
	}
	mockArgs := []driver.Value{"user-1"}

	expectedErr := errors.New("constraint violation")
	suite.mock.ExpectExec("DELETE FROM user_preference WHERE user_id = \\?").
		WithArgs(mockArgs...).
		WillReturnError(expectedErr)

	rowsAffected, err := suite.dbClient.Execute(testQuery, "user-1")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQuerySelectsDialectVariant() {
	testQuery := model.DBQuery{
		ID:            "test_query_dialect",
		Query:         "SELECT 1",
		PostgresQuery: "SELECT pref_value FROM user_preference WHERE user_id = $1",
	}
	mockArgs := []driver.Value{"user-1"}

	rows := sqlmock.NewRows([]string{"pref_value"}).AddRow("visual")
	suite.mock.ExpectQuery("SELECT pref_value FROM user_preference WHERE user_id = \\$1").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	pgClient := NewDBClient(model.NewDB(suite.mockDB), "postgres")
	results, err := pgClient.Query(testQuery, "user-1")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestBeginTxCommit() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("INSERT INTO user_preference").
		WillReturnResult(sqlmock.NewResult(1, 1))
	suite.mock.ExpectCommit()

	tx, err := suite.dbClient.BeginTx()
	assert.NoError(suite.T(), err)

	_, err = tx.Exec("INSERT INTO user_preference (user_id, pref_key, pref_value) VALUES (?, ?, ?)",
		"user-1", "loginFlow.preferredEditor", "visual")
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), tx.Commit())
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestBeginTxRollback() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectRollback()

	tx, err := suite.dbClient.BeginTx()
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), tx.Rollback())
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestClose() {
	suite.mock.ExpectClose()
	assert.NoError(suite.T(), suite.dbClient.Close())
}
