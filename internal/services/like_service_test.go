package services

import (
	"context"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/testutil"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func TestLikeTwice(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	tweet := testutil.CreateTweet(t, e.db, e.bob, "hello")

	res, err := e.likes.Like(ctx, e.alice.ID, tweet.ID)
	require.NoError(t, err)
	require.Equal(t, LikeResult{TweetID: tweet.ID, LikesCount: 1, Liked: true}, *res)

	_, err = e.likes.Like(ctx, e.alice.ID, tweet.ID)
	requireCode(t, err, errorx.Conflict)
	require.EqualValues(t, 1, e.count(t, &models.Like{}, "tweet_id = ?", tweet.ID))

	res, err = e.likes.Like(ctx, e.bob.ID, tweet.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, res.LikesCount)
}

func TestUnlikeNeverLiked(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	tweet := testutil.CreateTweet(t, e.db, e.bob, "hello")

	_, err := e.likes.Like(ctx, e.bob.ID, tweet.ID)
	require.NoError(t, err)

	res, err := e.likes.Unlike(ctx, e.alice.ID, tweet.ID)
	require.NoError(t, err)
	require.Equal(t, LikeResult{TweetID: tweet.ID, LikesCount: 1, Liked: false}, *res)
}

func TestLikeThenUnlike(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	tweet := testutil.CreateTweet(t, e.db, e.bob, "hello")

	_, err := e.likes.Like(ctx, e.alice.ID, tweet.ID)
	require.NoError(t, err)
	res, err := e.likes.Unlike(ctx, e.alice.ID, tweet.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.LikesCount)
	require.False(t, res.Liked)

	// A fresh like after unliking is allowed.
	res, err = e.likes.Like(ctx, e.alice.ID, tweet.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, res.LikesCount)
}

func TestLikeMissingTweet(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.likes.Like(ctx, e.alice.ID, 404)
	requireCode(t, err, errorx.NotFound)
	_, err = e.likes.Unlike(ctx, e.alice.ID, 404)
	requireCode(t, err, errorx.NotFound)
}
