/* Copyright 2025 Cozinha Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package database provides access to the local cozinha database
package database

import (
	"database/sql"

	// the sqlite3 driver is required by every consumer of this package
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DB is a connection to the local database. It is opened once by the startup
// sequence and shared through the cozinha context for the process lifetime.
type DB struct {
	*sql.DB
}

// Queryable is the minimal query interface satisfied by both a database
// connection and a transaction
type Queryable interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Open opens a connection to the SQLite database at the given path
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	return &DB{DB: db}, nil
}
