package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"socialfeed-api/feed/domain"
	"socialfeed-api/shared/db"
)

var _ domain.CommentRepository = (*SQLiteCommentRepository)(nil)

// SQLiteCommentRepository implements domain.CommentRepository over the
// shared SQLite store.
type SQLiteCommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *SQLiteCommentRepository {
	return &SQLiteCommentRepository{
		db: db,
	}
}

const insertCommentQuery = `
	INSERT INTO comments (id, post_id, username, content, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
`

func (r *SQLiteCommentRepository) Insert(ctx context.Context, c *domain.Comment) error {
	executor := db.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, insertCommentQuery,
		c.ID,
		c.PostID,
		c.Username,
		c.Content,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

const findCommentQuery = `
	SELECT id, post_id, username, content, created_at, updated_at
	FROM comments
	WHERE id = ? AND post_id = ?
`

func (r *SQLiteCommentRepository) FindByID(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	executor := db.GetExecutor(ctx, r.db)

	var c domain.Comment
	err := executor.QueryRowContext(ctx, findCommentQuery, commentID, postID).Scan(
		&c.ID,
		&c.PostID,
		&c.Username,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return &c, nil
}

const listCommentsQuery = `
	SELECT id, post_id, username, content, created_at, updated_at
	FROM comments
	WHERE post_id = ?
	ORDER BY created_at ASC
`

func (r *SQLiteCommentRepository) FindByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsQuery, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.Username,
			&c.Content,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

const updateCommentContentQuery = `
	UPDATE comments
	SET content = ?, updated_at = ?
	WHERE id = ?
`

func (r *SQLiteCommentRepository) UpdateContent(ctx context.Context, id, content, updatedAt string) (bool, error) {
	executor := db.GetExecutor(ctx, r.db)
	res, err := executor.ExecContext(ctx, updateCommentContentQuery, content, updatedAt, id)
	if err != nil {
		return false, fmt.Errorf("failed to update comment content: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

const deleteCommentQuery = `
	DELETE FROM comments
	WHERE id = ? AND post_id = ?
`

func (r *SQLiteCommentRepository) Delete(ctx context.Context, postID, commentID string) (bool, error) {
	executor := db.GetExecutor(ctx, r.db)
	res, err := executor.ExecContext(ctx, deleteCommentQuery, commentID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

const countCommentsQuery = `
	SELECT COUNT(*) FROM comments WHERE post_id = ?
`

func (r *SQLiteCommentRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	executor := db.GetExecutor(ctx, r.db)

	var count int
	err := executor.QueryRowContext(ctx, countCommentsQuery, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
