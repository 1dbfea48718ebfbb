package persistence

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB opens a throwaway store with the current schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// The foreign_keys pragma is per-connection; a single pooled
	// connection keeps it in force for every statement
	db.SetMaxOpenConns(1)

	stmts := []string{
		`PRAGMA foreign_keys=ON`,
		`CREATE TABLE posts (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE comments (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL,
			username TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			FOREIGN KEY(post_id) REFERENCES posts(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE likes (
			post_id TEXT NOT NULL,
			username TEXT NOT NULL,
			liked_at TEXT NOT NULL,
			PRIMARY KEY(post_id, username),
			FOREIGN KEY(post_id) REFERENCES posts(id) ON DELETE CASCADE
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to prepare schema: %v", err)
		}
	}

	return db
}
