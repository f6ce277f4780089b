package services

import (
	"context"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/testutil"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func TestFollowScenario(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	edge := func() int64 {
		return e.count(t, &models.Follow{}, "follower_id = ? AND following_id = ?", e.alice.ID, e.bob.ID)
	}

	res, err := e.follows.Follow(ctx, e.alice.ID, "bob")
	require.NoError(t, err)
	require.False(t, res.AlreadyFollowing)
	require.Equal(t, "bob", res.Target.Username)
	require.EqualValues(t, 1, edge())

	res, err = e.follows.Follow(ctx, e.alice.ID, "bob")
	require.NoError(t, err)
	require.True(t, res.AlreadyFollowing)
	require.EqualValues(t, 1, edge())

	un, err := e.follows.Unfollow(ctx, e.alice.ID, "bob")
	require.NoError(t, err)
	require.True(t, un.Removed)
	require.EqualValues(t, 0, edge())

	un, err = e.follows.Unfollow(ctx, e.alice.ID, "bob")
	require.NoError(t, err)
	require.False(t, un.Removed)
	require.EqualValues(t, 0, edge())
}

func TestFollowSelf(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.follows.Follow(ctx, e.alice.ID, "alice")
	requireCode(t, err, errorx.InvalidOperation)
	_, err = e.follows.Unfollow(ctx, e.alice.ID, "alice")
	requireCode(t, err, errorx.InvalidOperation)

	require.EqualValues(t, 0, e.count(t, &models.Follow{}, "follower_id = ?", e.alice.ID))
}

func TestFollowUnknownHandle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.follows.Follow(ctx, e.alice.ID, "nobody")
	requireCode(t, err, errorx.NotFound)
	_, err = e.follows.Unfollow(ctx, e.alice.ID, "nobody")
	requireCode(t, err, errorx.NotFound)
	_, err = e.follows.Following(ctx, e.alice.ID, "nobody")
	requireCode(t, err, errorx.NotFound)
	_, err = e.follows.Followers(ctx, e.alice.ID, "nobody")
	requireCode(t, err, errorx.NotFound)
}

func TestFollowCountsAndLists(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	carol := testutil.CreateUser(t, e.db, "carol")

	for _, handle := range []string{"bob", "carol"} {
		_, err := e.follows.Follow(ctx, e.alice.ID, handle)
		require.NoError(t, err)
	}
	_, err := e.follows.Follow(ctx, carol.ID, "bob")
	require.NoError(t, err)

	following, err := e.follows.Following(ctx, e.bob.ID, "alice")
	require.NoError(t, err)
	require.Len(t, following, 2)
	require.Equal(t, "bob", following[0].User.Username)
	require.Equal(t, "carol", following[1].User.Username)

	followers, err := e.follows.Followers(ctx, e.alice.ID, "bob")
	require.NoError(t, err)
	require.Len(t, followers, 2)
	require.Equal(t, "alice", followers[0].User.Username)
	require.Equal(t, "carol", followers[1].User.Username)

	profile, err := e.profiles.Get(ctx, e.alice.ID, "bob")
	require.NoError(t, err)
	require.EqualValues(t, 2, profile.FollowerCount)
	require.EqualValues(t, 0, profile.FollowingCount)
	require.True(t, profile.IsFollowing)

	profile, err = e.profiles.Get(ctx, e.alice.ID, "alice")
	require.NoError(t, err)
	require.EqualValues(t, 2, profile.FollowingCount)
	require.True(t, profile.IsSelf)
	require.False(t, profile.IsFollowing)
}
