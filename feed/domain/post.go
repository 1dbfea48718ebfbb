package domain

import (
	"context"
)

// Post is a top-level shared text item. LikesCount and CommentsCount are
// derived at read time from the likes and comments tables; they are never
// stored on the post row.
type Post struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Content       string `json:"content"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
}

type PostRepository interface {
	// Insert persists a new post. It fails on a duplicate id.
	Insert(ctx context.Context, p *Post) error

	// FindByID returns the post or (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*Post, error)

	// FindAll returns every post ordered by created_at descending.
	FindAll(ctx context.Context) ([]*Post, error)

	// UpdateContent sets content and updated_at, reporting whether a row
	// was actually affected.
	UpdateContent(ctx context.Context, id, content, updatedAt string) (bool, error)

	// Delete removes the post together with its comments and likes as one
	// atomic unit, reporting whether a post row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
