//go:build !purego_sqlite

package database

import (
	// SQLite driver for database/sql
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

func dsn(path string) string {
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}
