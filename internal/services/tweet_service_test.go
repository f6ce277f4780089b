package services

import (
	"context"
	"strings"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/testutil"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func TestCreateTweetLength(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	tweet, err := e.tweets.Create(ctx, e.alice.ID, "hello")
	require.NoError(t, err)
	require.Equal(t, e.alice.ID, tweet.AuthorID)
	require.False(t, tweet.CreatedAt.IsZero())

	_, err = e.tweets.Create(ctx, e.alice.ID, strings.Repeat("x", 140))
	require.NoError(t, err)

	_, err = e.tweets.Create(ctx, e.alice.ID, strings.Repeat("x", 141))
	requireCode(t, err, errorx.Validation)
	var verr *errorx.Error
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields["content"], "at most 140 characters")

	_, err = e.tweets.Create(ctx, e.alice.ID, "")
	requireCode(t, err, errorx.Validation)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "This field is required.", verr.Fields["content"])

	for _, blank := range []string{"   ", "\n\t"} {
		_, err = e.tweets.Create(ctx, e.alice.ID, blank)
		requireCode(t, err, errorx.Validation)
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "This field is required.", verr.Fields["content"])
	}

	tweet, err = e.tweets.Create(ctx, e.alice.ID, "  padded\n")
	require.NoError(t, err)
	require.Equal(t, "padded", tweet.Content)

	require.EqualValues(t, 3, e.count(t, &models.Tweet{}, "author_id = ?", e.alice.ID))
}

func TestDeleteTweetByAuthor(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	tweet := testutil.CreateTweet(t, e.db, e.alice, "first")
	testutil.CreateTweet(t, e.db, e.alice, "second")

	_, err := e.likes.Like(ctx, e.alice.ID, tweet.ID)
	require.NoError(t, err)
	_, err = e.likes.Like(ctx, e.bob.ID, tweet.ID)
	require.NoError(t, err)

	before, err := e.profiles.Get(ctx, e.alice.ID, "alice")
	require.NoError(t, err)

	require.NoError(t, e.tweets.Delete(ctx, e.alice.ID, tweet.ID))

	require.EqualValues(t, 0, e.count(t, &models.Tweet{}, "id = ?", tweet.ID))
	require.EqualValues(t, 0, e.count(t, &models.Like{}, "tweet_id = ?", tweet.ID))

	after, err := e.profiles.Get(ctx, e.alice.ID, "alice")
	require.NoError(t, err)
	require.Len(t, after.Tweets, len(before.Tweets)-1)

	err = e.tweets.Delete(ctx, e.alice.ID, tweet.ID)
	requireCode(t, err, errorx.NotFound)
}

func TestDeleteTweetByOther(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	tweet := testutil.CreateTweet(t, e.db, e.alice, "mine")
	_, err := e.likes.Like(ctx, e.bob.ID, tweet.ID)
	require.NoError(t, err)

	err = e.tweets.Delete(ctx, e.bob.ID, tweet.ID)
	requireCode(t, err, errorx.Forbidden)

	require.EqualValues(t, 1, e.count(t, &models.Tweet{}, "id = ?", tweet.ID))
	require.EqualValues(t, 1, e.count(t, &models.Like{}, "tweet_id = ?", tweet.ID))
}

func TestGetTweetAndTimeline(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	older := testutil.CreateTweet(t, e.db, e.alice, "older")
	newer := testutil.CreateTweet(t, e.db, e.bob, "newer")

	_, err := e.likes.Like(ctx, e.alice.ID, older.ID)
	require.NoError(t, err)

	view, err := e.tweets.Get(ctx, e.alice.ID, older.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", view.Author.Username)
	require.EqualValues(t, 1, view.LikesCount)
	require.True(t, view.IsLiked)

	view, err = e.tweets.Get(ctx, e.bob.ID, older.ID)
	require.NoError(t, err)
	require.False(t, view.IsLiked)

	_, err = e.tweets.Get(ctx, e.alice.ID, 999)
	requireCode(t, err, errorx.NotFound)

	timeline, err := e.tweets.Timeline(ctx, e.alice.ID)
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	require.Equal(t, newer.ID, timeline[0].ID)
	require.Equal(t, older.ID, timeline[1].ID)
	require.True(t, timeline[1].IsLiked)
	require.False(t, timeline[0].IsLiked)
}

func TestProfileLikedSet(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	t1 := testutil.CreateTweet(t, e.db, e.bob, "one")
	t2 := testutil.CreateTweet(t, e.db, e.bob, "two")
	testutil.CreateTweet(t, e.db, e.alice, "not on bob's page")

	_, err := e.likes.Like(ctx, e.alice.ID, t2.ID)
	require.NoError(t, err)

	profile, err := e.profiles.Get(ctx, e.alice.ID, "bob")
	require.NoError(t, err)
	require.Len(t, profile.Tweets, 2)
	require.Equal(t, t2.ID, profile.Tweets[0].ID)
	require.True(t, profile.Tweets[0].IsLiked)
	require.EqualValues(t, 1, profile.Tweets[0].LikesCount)
	require.Equal(t, t1.ID, profile.Tweets[1].ID)
	require.False(t, profile.Tweets[1].IsLiked)

	_, err = e.profiles.Get(ctx, e.alice.ID, "nobody")
	requireCode(t, err, errorx.NotFound)
}
