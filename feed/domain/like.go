package domain

import (
	"context"
)

// Like records a single user's endorsement of a post. The (post_id,
// username) pair is the primary key, so at most one like exists per user
// per post.
type Like struct {
	PostID   string `json:"postId"`
	Username string `json:"username"`
	LikedAt  string `json:"likedAt"`
}

type LikeRepository interface {
	// Insert records a like. Liking a post twice is a no-op, not an error.
	Insert(ctx context.Context, l *Like) error

	// Delete removes one (post, user) pair.
	Delete(ctx context.Context, postID, username string) error

	// DeleteAllForPost clears every like on a post.
	DeleteAllForPost(ctx context.Context, postID string) error

	// CountByPost returns the number of likes on a post, zero when none.
	CountByPost(ctx context.Context, postID string) (int, error)
}
