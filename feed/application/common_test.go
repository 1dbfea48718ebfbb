package application

import (
	"database/sql"
	"path/filepath"
	"testing"

	"socialfeed-api/feed/persistence"

	_ "modernc.org/sqlite"
)

// fakeClock lets tests pin and advance the stored timestamps.
type fakeClock struct {
	now string
}

func (c *fakeClock) Now() string {
	return c.now
}

type testEnv struct {
	db       *sql.DB
	clock    *fakeClock
	posts    *PostService
	comments *CommentService
	likes    *LikeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

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

	postRepo := persistence.NewPostRepository(db)
	commentRepo := persistence.NewCommentRepository(db)
	likeRepo := persistence.NewLikeRepository(db)

	clock := &fakeClock{now: "2024-06-01T10:00:00.000Z"}

	return &testEnv{
		db:       db,
		clock:    clock,
		posts:    NewPostService(postRepo, commentRepo, likeRepo, clock),
		comments: NewCommentService(commentRepo, clock),
		likes:    NewLikeService(likeRepo, clock),
	}
}
