package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// BuildDSN embeds the pragmas in the DSN so every connection in the
// pool carries them, not only the one that ran a PRAGMA statement.
func BuildDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(ON)")
	q.Add("_pragma", "busy_timeout(30000)")
	q.Add("_pragma", "synchronous(NORMAL)")
	return "file:" + path + "?" + q.Encode()
}

// Open opens (creating if needed) the sqlite database at path and
// applies the schema migrations.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", BuildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := Migrate(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}
