package application

import (
	"context"
	"errors"
	"testing"

	"socialfeed-api/feed/domain"

	"github.com/stretchr/testify/require"
)

func TestCommentService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.posts.Create(ctx, "alice", "hi")
	require.NoError(t, err)

	env.clock.now = "2024-06-01T10:01:00.000Z"
	c, err := env.comments.Create(ctx, p.ID, "bob", "nice")
	require.NoError(t, err)

	require.NotEmpty(t, c.ID)
	require.Equal(t, p.ID, c.PostID)
	require.Equal(t, "bob", c.Username)
	require.Equal(t, "2024-06-01T10:01:00.000Z", c.CreatedAt)
	require.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestCommentService_List_OldestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.posts.Create(ctx, "alice", "hi")
	require.NoError(t, err)

	env.clock.now = "2024-06-01T10:01:00.000Z"
	first, err := env.comments.Create(ctx, p.ID, "bob", "first")
	require.NoError(t, err)

	env.clock.now = "2024-06-01T10:02:00.000Z"
	second, err := env.comments.Create(ctx, p.ID, "carol", "second")
	require.NoError(t, err)

	comments, err := env.comments.List(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, first.ID, comments[0].ID)
	require.Equal(t, second.ID, comments[1].ID)
}

func TestCommentService_Update_OwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.posts.Create(ctx, "alice", "hi")
	require.NoError(t, err)
	c, err := env.comments.Create(ctx, p.ID, "bob", "nice")
	require.NoError(t, err)

	_, err = env.comments.Update(ctx, p.ID, c.ID, "alice", "not yours")

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected a ValidationError, got %v", err)

	got, err := env.comments.Get(ctx, p.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "nice", got.Content)
	require.Equal(t, c.UpdatedAt, got.UpdatedAt)
}

func TestCommentService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.posts.Create(ctx, "alice", "hi")
	require.NoError(t, err)
	c, err := env.comments.Create(ctx, p.ID, "bob", "nice")
	require.NoError(t, err)

	env.clock.now = "2024-06-01T10:30:00.000Z"
	updated, err := env.comments.Update(ctx, p.ID, c.ID, "bob", "nicer")
	require.NoError(t, err)
	require.Equal(t, "nicer", updated.Content)
	require.Equal(t, "2024-06-01T10:30:00.000Z", updated.UpdatedAt)
	require.Equal(t, c.CreatedAt, updated.CreatedAt)
}

func TestCommentService_GetAndDelete_Missing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.posts.Create(ctx, "alice", "hi")
	require.NoError(t, err)

	_, err = env.comments.Get(ctx, p.ID, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = env.comments.Delete(ctx, p.ID, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
