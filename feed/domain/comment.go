package domain

import (
	"context"
)

// Comment is a child text item attached to exactly one post.
type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CommentRepository interface {
	Insert(ctx context.Context, c *Comment) error

	// FindByID is scoped to the parent post; a comment id paired with the
	// wrong post is absent.
	FindByID(ctx context.Context, postID, commentID string) (*Comment, error)

	// FindByPost returns the post's comments ordered by created_at ascending.
	FindByPost(ctx context.Context, postID string) ([]*Comment, error)

	UpdateContent(ctx context.Context, id, content, updatedAt string) (bool, error)
	Delete(ctx context.Context, postID, commentID string) (bool, error)

	// CountByPost returns the number of comments on a post. A post with no
	// rows counts as zero; a nonexistent post is not an error here.
	CountByPost(ctx context.Context, postID string) (int, error)
}
