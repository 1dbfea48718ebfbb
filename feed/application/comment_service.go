package application

import (
	"context"

	"socialfeed-api/feed/domain"

	"github.com/google/uuid"
)

// CommentService mirrors PostService for a post's comments. Parent-post
// existence is the transport layer's concern; comment lookups here are
// simply scoped to the post id.
type CommentService struct {
	comments domain.CommentRepository
	clock    domain.Clock
}

func NewCommentService(comments domain.CommentRepository, clock domain.Clock) *CommentService {
	return &CommentService{
		comments: comments,
		clock:    clock,
	}
}

func (s *CommentService) List(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.comments.FindByPost(ctx, postID)
}

func (s *CommentService) Get(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	c, err := s.comments.FindByID(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *CommentService) Create(ctx context.Context, postID, username, content string) (*domain.Comment, error) {
	now := s.clock.Now()
	c := &domain.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.comments.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, postID, commentID, username, content string) (*domain.Comment, error) {
	c, err := s.comments.FindByID(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if c.Username != username {
		return nil, domain.NewValidationError("Username mismatch")
	}

	now := s.clock.Now()
	affected, err := s.comments.UpdateContent(ctx, commentID, content, now)
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, domain.ErrNotFound
	}

	c.Content = content
	c.UpdatedAt = now
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, postID, commentID string) error {
	removed, err := s.comments.Delete(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}
