// Package db constructs the SQLite connection pool for the service.
package db

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Open builds the pooled handle for the file-backed database. The pool is
// opened and pinged at startup so a bad DB_PATH fails before the listener
// starts; the webhook dispatcher holds the handle but never queries it yet.
func Open(path string) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
