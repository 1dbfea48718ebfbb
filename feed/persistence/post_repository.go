package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"socialfeed-api/feed/domain"
	"socialfeed-api/shared/db"
)

var _ domain.PostRepository = (*SQLitePostRepository)(nil)

// SQLitePostRepository implements domain.PostRepository over the shared
// SQLite store.
type SQLitePostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{
		db: db,
	}
}

const insertPostQuery = `
	INSERT INTO posts (id, username, content, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
`

func (r *SQLitePostRepository) Insert(ctx context.Context, p *domain.Post) error {
	executor := db.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, insertPostQuery,
		p.ID,
		p.Username,
		p.Content,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

const findPostQuery = `
	SELECT id, username, content, created_at, updated_at
	FROM posts
	WHERE id = ?
`

// FindByID returns (nil, nil) when no post has the given id. Absence is an
// expected outcome the caller decides how to report.
func (r *SQLitePostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	executor := db.GetExecutor(ctx, r.db)

	var p domain.Post
	err := executor.QueryRowContext(ctx, findPostQuery, id).Scan(
		&p.ID,
		&p.Username,
		&p.Content,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	return &p, nil
}

const listPostsQuery = `
	SELECT id, username, content, created_at, updated_at
	FROM posts
	ORDER BY created_at DESC
`

func (r *SQLitePostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var p domain.Post
		err := rows.Scan(
			&p.ID,
			&p.Username,
			&p.Content,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

const updatePostContentQuery = `
	UPDATE posts
	SET content = ?, updated_at = ?
	WHERE id = ?
`

func (r *SQLitePostRepository) UpdateContent(ctx context.Context, id, content, updatedAt string) (bool, error) {
	executor := db.GetExecutor(ctx, r.db)
	res, err := executor.ExecContext(ctx, updatePostContentQuery, content, updatedAt, id)
	if err != nil {
		return false, fmt.Errorf("failed to update post content: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

const (
	deletePostCommentsQuery = `DELETE FROM comments WHERE post_id = ?`
	deletePostLikesQuery    = `DELETE FROM likes WHERE post_id = ?`
	deletePostQuery         = `DELETE FROM posts WHERE id = ?`
)

// Delete removes the post and everything referencing it inside a single
// transaction. A concurrent reader either sees the post with all of its
// comments and likes or none of them.
func (r *SQLitePostRepository) Delete(ctx context.Context, id string) (bool, error) {
	var removed bool

	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		if _, err := executor.ExecContext(txCtx, deletePostCommentsQuery, id); err != nil {
			return fmt.Errorf("failed to delete post comments: %w", err)
		}
		if _, err := executor.ExecContext(txCtx, deletePostLikesQuery, id); err != nil {
			return fmt.Errorf("failed to delete post likes: %w", err)
		}

		res, err := executor.ExecContext(txCtx, deletePostQuery, id)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		removed = affected > 0
		return nil
	})

	if err != nil {
		return false, err
	}
	return removed, nil
}
