// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/weeksheet/cliparse"
)

func init() {
	// modernc.org/sqlite registers as "sqlite", which sqlx does not know.
	// SQLite accepts $1 placeholders natively, so dollar binding works for
	// both backends and queries need no per-dialect rebinding.
	sqlx.BindDriver("sqlite", sqlx.DOLLAR)
}

// Open connects to the configured database and verifies the connection.
func Open(cfg cliparse.Config) (*sqlx.DB, error) {
	var conn *sqlx.DB
	var err error

	switch cfg.DatabaseType {
	case "postgres":
		conn, err = sqlx.Open("postgres", cfg.DatabaseURL)
	case "sqlite":
		conn, err = sqlx.Open("sqlite", SQLiteDSN(cfg.DatabaseURL))
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// SQLiteDSN turns a plain file path into a modernc sqlite DSN with WAL,
// foreign key enforcement, and a busy timeout enabled on every connection.
func SQLiteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
