package application

import (
	"context"
	"fmt"

	"socialfeed-api/feed/domain"

	"github.com/google/uuid"
)

// PostService orchestrates the post store and the derived-count queries.
// It owns id generation, timestamping and the author ownership check; the
// transport layer only sees records, domain.ErrNotFound or a
// domain.ValidationError.
type PostService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
	likes    domain.LikeRepository
	clock    domain.Clock
}

func NewPostService(
	posts domain.PostRepository,
	comments domain.CommentRepository,
	likes domain.LikeRepository,
	clock domain.Clock,
) *PostService {
	return &PostService{
		posts:    posts,
		comments: comments,
		likes:    likes,
		clock:    clock,
	}
}

// List returns every post, newest first, with derived counts populated.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		if err := s.enrichCounts(ctx, p); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.enrichCounts(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, username, content string) (*domain.Post, error) {
	now := s.clock.Now()
	p := &domain.Post{
		ID:        uuid.New().String(),
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Insert(ctx, p); err != nil {
		return nil, err
	}

	// A brand-new post has no likes or comments yet; the zero values on
	// the struct already reflect that.
	return p, nil
}

// Update edits a post's content. The username must match the stored author;
// a mismatch fails before anything is written.
func (s *PostService) Update(ctx context.Context, id, username, content string) (*domain.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if p.Username != username {
		return nil, domain.NewValidationError("Username mismatch")
	}

	now := s.clock.Now()
	affected, err := s.posts.UpdateContent(ctx, id, content, now)
	if err != nil {
		return nil, err
	}
	if !affected {
		// The post vanished between the lookup and the write.
		return nil, domain.ErrNotFound
	}

	p.Content = content
	p.UpdatedAt = now

	if err := s.enrichCounts(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a post and, transitively, its comments and likes.
func (s *PostService) Delete(ctx context.Context, id string) error {
	removed, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PostService) enrichCounts(ctx context.Context, p *domain.Post) error {
	likes, err := s.likes.CountByPost(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to count likes for post %s: %w", p.ID, err)
	}
	comments, err := s.comments.CountByPost(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to count comments for post %s: %w", p.ID, err)
	}

	p.LikesCount = likes
	p.CommentsCount = comments
	return nil
}
