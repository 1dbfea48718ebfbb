package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"socialfeed-api/feed/domain"
	"socialfeed-api/shared/db"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var _ domain.LikeRepository = (*SQLiteLikeRepository)(nil)

// SQLiteLikeRepository implements domain.LikeRepository over the shared
// SQLite store.
type SQLiteLikeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) *SQLiteLikeRepository {
	return &SQLiteLikeRepository{
		db: db,
	}
}

const insertLikeQuery = `
	INSERT INTO likes (post_id, username, liked_at)
	VALUES (?, ?, ?)
	ON CONFLICT(post_id, username) DO NOTHING
`

// Insert records a like. The conflict clause swallows the uniqueness
// violation, making a repeated like a no-op rather than an error. A foreign
// key violation is swallowed the same way: it means the post was deleted
// after the caller checked for it, and the cascade has already discarded
// every like on that post.
func (r *SQLiteLikeRepository) Insert(ctx context.Context, l *domain.Like) error {
	executor := db.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, insertLikeQuery,
		l.PostID,
		l.Username,
		l.LikedAt,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// isConstraintViolation matches the whole SQLITE_CONSTRAINT class, extended
// codes included.
func isConstraintViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

const deleteLikeQuery = `
	DELETE FROM likes WHERE post_id = ? AND username = ?
`

func (r *SQLiteLikeRepository) Delete(ctx context.Context, postID, username string) error {
	executor := db.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, deleteLikeQuery, postID, username); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

const deleteAllLikesQuery = `
	DELETE FROM likes WHERE post_id = ?
`

func (r *SQLiteLikeRepository) DeleteAllForPost(ctx context.Context, postID string) error {
	executor := db.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, deleteAllLikesQuery, postID); err != nil {
		return fmt.Errorf("failed to delete likes for post: %w", err)
	}
	return nil
}

const countLikesQuery = `
	SELECT COUNT(*) FROM likes WHERE post_id = ?
`

func (r *SQLiteLikeRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	executor := db.GetExecutor(ctx, r.db)

	var count int
	err := executor.QueryRowContext(ctx, countLikesQuery, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
