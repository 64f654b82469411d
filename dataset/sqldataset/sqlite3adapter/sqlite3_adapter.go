/*
Package sqlite3adapter opens SQLite3 database files for use
with the sqldataset package.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

/*
Open takes a path to an SQLite3 database file and returns an *sql.DB that
works on the file's database or an error if it fails to open as an sqlite3 database.
*/
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	return db, nil
}
