//go:build purego_sqlite

package database

import (
	// Pure Go SQLite driver for builds without cgo
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func dsn(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
