package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	"socialfeed-api/shared/db"

	_ "modernc.org/sqlite"
)

const defaultPath = "./socialfeed.db"

type SQLiteConfig struct {
	Path string
}

// NewSQLiteConfig builds a config from the SQLITE_DB_PATH environment
// variable, falling back to ./socialfeed.db.
func NewSQLiteConfig() *SQLiteConfig {
	path := os.Getenv("SQLITE_DB_PATH")
	if path == "" {
		path = defaultPath
	}

	return &SQLiteConfig{
		Path: path,
	}
}

// SQLiteDB implements the db.Database interface for SQLite
type SQLiteDB struct {
	dbPath string
	db     *sql.DB
}

var _ db.Database = (*SQLiteDB)(nil)

// NewSQLiteDB creates a new SQLite database instance
func NewSQLiteDB(cfg *SQLiteConfig) *SQLiteDB {
	return &SQLiteDB{
		dbPath: cfg.Path,
	}
}

// Connect opens the database, applies connection pragmas and brings the
// schema to the current shape. It must complete before the HTTP surface
// accepts traffic; a failure here means the process does not start serving.
func (s *SQLiteDB) Connect() error {
	if s.db != nil {
		return fmt.Errorf("database already connected")
	}

	conn, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",   // Write-Ahead Logging for better concurrency
		"PRAGMA synchronous=NORMAL", // Balance between safety and performance
		"PRAGMA foreign_keys=ON",    // SQLite leaves foreign keys off per-connection
		"PRAGMA busy_timeout=5000",  // Wait up to 5 seconds if database is locked
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := ensureSchema(conn); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	s.db = conn

	return nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// DB returns the underlying *sql.DB instance
func (s *SQLiteDB) DB() *sql.DB {
	return s.db
}
