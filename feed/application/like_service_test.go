package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func likeCount(t *testing.T, env *testEnv, postID string) int {
	t.Helper()
	var count int
	require.NoError(t, env.db.QueryRow("SELECT COUNT(*) FROM likes WHERE post_id=?", postID).Scan(&count))
	return count
}

func TestLikeService_Like_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.posts.Create(ctx, "alice", "hi")
	require.NoError(t, err)

	env.clock.now = "2024-06-01T10:01:00.000Z"
	l, err := env.likes.Like(ctx, p.ID, "carol")
	require.NoError(t, err)
	require.Equal(t, p.ID, l.PostID)
	require.Equal(t, "carol", l.Username)
	require.Equal(t, "2024-06-01T10:01:00.000Z", l.LikedAt)

	// Liking again succeeds and leaves a single row
	env.clock.now = "2024-06-01T10:02:00.000Z"
	_, err = env.likes.Like(ctx, p.ID, "carol")
	require.NoError(t, err)

	require.Equal(t, 1, likeCount(t, env, p.ID))

	got, err := env.posts.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.LikesCount)
}

func TestLikeService_Unlike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.posts.Create(ctx, "alice", "hi")
	require.NoError(t, err)

	_, err = env.likes.Like(ctx, p.ID, "carol")
	require.NoError(t, err)
	_, err = env.likes.Like(ctx, p.ID, "dave")
	require.NoError(t, err)

	require.NoError(t, env.likes.Unlike(ctx, p.ID, "carol"))
	require.Equal(t, 1, likeCount(t, env, p.ID))

	// Unliking a pair that never existed is a no-op
	require.NoError(t, env.likes.Unlike(ctx, p.ID, "nobody"))
	require.Equal(t, 1, likeCount(t, env, p.ID))
}

func TestLikeService_Unlike_EmptyUsernameClearsAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.posts.Create(ctx, "alice", "hi")
	require.NoError(t, err)

	for _, u := range []string{"carol", "dave", "erin"} {
		_, err = env.likes.Like(ctx, p.ID, u)
		require.NoError(t, err)
	}
	require.Equal(t, 3, likeCount(t, env, p.ID))

	// Pinned behavior: no username means every like on the post goes away
	require.NoError(t, env.likes.Unlike(ctx, p.ID, ""))
	require.Equal(t, 0, likeCount(t, env, p.ID))
}
