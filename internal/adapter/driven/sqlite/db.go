// Package sqlite reads and writes browser profile databases through the
// modernc.org pure-Go driver. Live profile files are never opened directly;
// every read and write goes through a transient working copy so a running
// browser holding the original open is not corrupted mid-operation.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens a single-connection handle on dbPath with a busy timeout.
// Profile stores have exactly one mutator at a time by construction, so one
// connection is all the tool needs.
func Open(dbPath string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dbPath, err)
	}

	return db, nil
}
