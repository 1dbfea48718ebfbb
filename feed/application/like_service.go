package application

import (
	"context"

	"socialfeed-api/feed/domain"
)

// LikeService handles likes on posts. Like is idempotent: repeating it
// leaves exactly one row and never errors.
type LikeService struct {
	likes domain.LikeRepository
	clock domain.Clock
}

func NewLikeService(likes domain.LikeRepository, clock domain.Clock) *LikeService {
	return &LikeService{
		likes: likes,
		clock: clock,
	}
}

// Like records username's like on a post and returns the (post, user,
// timestamp) triple. When the like already exists the stored row is kept
// untouched and the returned timestamp is simply the current time.
func (s *LikeService) Like(ctx context.Context, postID, username string) (*domain.Like, error) {
	l := &domain.Like{
		PostID:   postID,
		Username: username,
		LikedAt:  s.clock.Now(),
	}

	if err := s.likes.Insert(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Unlike removes username's like on the post. With an empty username it
// clears every like on the post. That bulk behavior is reachable through an
// optional request field and looks more like an accident of the API shape
// than a design decision, but it is kept as-is; tests pin it.
func (s *LikeService) Unlike(ctx context.Context, postID, username string) error {
	if username != "" {
		return s.likes.Delete(ctx, postID, username)
	}
	return s.likes.DeleteAllForPost(ctx, postID)
}
