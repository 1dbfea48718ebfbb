package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// The schema is brought to its current shape by an ordered list of
// idempotent steps. Each step inspects the live structure (sqlite_master,
// PRAGMA table_info) and heals what it finds, so there is no separate
// migration version table: an empty file, a store written by an older
// release and an already-current store all converge to the same shape.
type schemaStep struct {
	name   string
	ensure func(db *sql.DB) error
}

var schemaSteps = []schemaStep{
	{name: "ensure_posts", ensure: ensurePosts},
	{name: "ensure_comments", ensure: ensureComments},
	{name: "ensure_likes", ensure: ensureLikes},
}

const createPostsTable = `
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)
`

const createCommentsTable = `
	CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL,
		username TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY(post_id) REFERENCES posts(id) ON DELETE CASCADE
	)
`

const createLikesTable = `
	CREATE TABLE IF NOT EXISTS likes (
		post_id TEXT NOT NULL,
		username TEXT NOT NULL,
		liked_at TEXT NOT NULL,
		PRIMARY KEY(post_id, username),
		FOREIGN KEY(post_id) REFERENCES posts(id) ON DELETE CASCADE
	)
`

// ensureSchema runs every schema step in order. It is called once per
// process, from Connect, strictly before any repository touches the store.
func ensureSchema(db *sql.DB) error {
	for _, step := range schemaSteps {
		if err := step.ensure(db); err != nil {
			return fmt.Errorf("schema step %s: %w", step.name, err)
		}
	}
	return nil
}

// ensurePosts creates the posts table when it is absent. A posts table
// without a username column predates the current identifier scheme; it is
// renamed to posts_legacy rather than dropped, and a fresh table is created
// in its place. Legacy rows are not migrated: their integer ids are
// incompatible with the UUIDs the current schema uses. This is a deliberate,
// lossy compatibility break, but the old data stays on disk.
func ensurePosts(db *sql.DB) error {
	exists, err := tableExists(db, "posts")
	if err != nil {
		return err
	}

	if exists {
		cols, err := tableColumns(db, "posts")
		if err != nil {
			return err
		}
		if cols["username"] {
			return nil
		}

		log.Warn().Msg("posts table predates username column; renaming to posts_legacy")
		if _, err := db.Exec(`ALTER TABLE posts RENAME TO posts_legacy`); err != nil {
			return fmt.Errorf("failed to rename legacy posts table: %w", err)
		}
	}

	if _, err := db.Exec(createPostsTable); err != nil {
		return fmt.Errorf("failed to create posts table: %w", err)
	}
	return nil
}

// ensureComments rebuilds the comments table when it is structurally stale.
// Comments are not considered durable across a schema gap, so a stale table
// is dropped and recreated empty.
func ensureComments(db *sql.DB) error {
	exists, err := tableExists(db, "comments")
	if err != nil {
		return err
	}

	if exists {
		cols, err := tableColumns(db, "comments")
		if err != nil {
			return err
		}
		if cols["username"] && cols["post_id"] && cols["updated_at"] {
			return nil
		}

		log.Warn().Msg("comments table is structurally stale; dropping and recreating")
		if _, err := db.Exec(`DROP TABLE comments`); err != nil {
			return fmt.Errorf("failed to drop stale comments table: %w", err)
		}
	}

	if _, err := db.Exec(createCommentsTable); err != nil {
		return fmt.Errorf("failed to create comments table: %w", err)
	}
	return nil
}

// ensureLikes rebuilds the likes table when it is structurally stale,
// following the same rule as comments.
func ensureLikes(db *sql.DB) error {
	exists, err := tableExists(db, "likes")
	if err != nil {
		return err
	}

	if exists {
		cols, err := tableColumns(db, "likes")
		if err != nil {
			return err
		}
		if cols["post_id"] && cols["username"] && cols["liked_at"] {
			return nil
		}

		log.Warn().Msg("likes table is structurally stale; dropping and recreating")
		if _, err := db.Exec(`DROP TABLE likes`); err != nil {
			return fmt.Errorf("failed to drop stale likes table: %w", err)
		}
	}

	if _, err := db.Exec(createLikesTable); err != nil {
		return fmt.Errorf("failed to create likes table: %w", err)
	}
	return nil
}

func tableExists(db *sql.DB, name string) (bool, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check for table %s: %w", name, err)
	}
	return count > 0, nil
}

func tableColumns(db *sql.DB, name string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, name))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", name, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid      int
			colName  string
			colType  string
			notNull  int
			dflt     sql.NullString
			primaryK int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &primaryK); err != nil {
			return nil, fmt.Errorf("failed to scan column info for %s: %w", name, err)
		}
		cols[colName] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column info for %s: %w", name, err)
	}
	return cols, nil
}
