package services

import (
	"context"
	"errors"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"gorm.io/gorm"
)

// LikeResult carries the like count read back from the store after the change.
type LikeResult struct {
	TweetID    uint  `json:"tweet_id"`
	LikesCount int64 `json:"likes_count"`
	Liked      bool  `json:"liked"`
}

type LikeService struct {
	tx     repositories.Transactor
	tweets repositories.TweetRepository
	likes  repositories.LikeRepository
}

func NewLikeService(tx repositories.Transactor, tweets repositories.TweetRepository, likes repositories.LikeRepository) *LikeService {
	return &LikeService{tx: tx, tweets: tweets, likes: likes}
}

// Like records actor's like on tweetID. A second like fails with Conflict.
func (s *LikeService) Like(ctx context.Context, actor uint, tweetID uint) (*LikeResult, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var result LikeResult
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := lookupTweet(ctx, s.tweets, tweetID); err != nil {
			return err
		}

		liked, err := s.likes.HasUserLikedTweet(ctx, tweetID, actor)
		if err != nil {
			return errorx.Wrap(err, "failed to check like on tweet %d", tweetID)
		}
		if liked {
			return errorx.New(errorx.Conflict, "already liked")
		}

		// The unique index on (tweet_id, user_id) settles concurrent likes.
		err = s.likes.CreateLike(ctx, &models.Like{TweetID: tweetID, UserID: actor})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorx.New(errorx.Conflict, "already liked")
		}
		if err != nil {
			return errorx.Wrap(err, "failed to like tweet %d", tweetID)
		}

		count, err := s.likes.GetLikesCountByTweetID(ctx, tweetID)
		if err != nil {
			return errorx.Wrap(err, "failed to count likes of tweet %d", tweetID)
		}
		result = LikeResult{TweetID: tweetID, LikesCount: count, Liked: true}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "like failed")
	}
	return &result, nil
}

// Unlike removes actor's like on tweetID. Unliking a tweet that was never
// liked leaves the count unchanged and succeeds.
func (s *LikeService) Unlike(ctx context.Context, actor uint, tweetID uint) (*LikeResult, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var result LikeResult
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := lookupTweet(ctx, s.tweets, tweetID); err != nil {
			return err
		}

		if _, err := s.likes.DeleteLike(ctx, tweetID, actor); err != nil {
			return errorx.Wrap(err, "failed to unlike tweet %d", tweetID)
		}

		count, err := s.likes.GetLikesCountByTweetID(ctx, tweetID)
		if err != nil {
			return errorx.Wrap(err, "failed to count likes of tweet %d", tweetID)
		}
		result = LikeResult{TweetID: tweetID, LikesCount: count, Liked: false}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "unlike failed")
	}
	return &result, nil
}

// tweetViews decorates tweets with like counts and the viewer's liked flag
// using two set queries, whatever the number of tweets.
func tweetViews(ctx context.Context, likes repositories.LikeRepository, viewer uint, tweets []models.Tweet) ([]models.TweetView, error) {
	ids := make([]uint, len(tweets))
	for i, t := range tweets {
		ids[i] = t.ID
	}

	counts, err := likes.GetLikesCounts(ctx, ids)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to count likes")
	}
	liked, err := likes.GetLikedTweetIDs(ctx, viewer, ids)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to load liked tweets")
	}

	views := make([]models.TweetView, len(tweets))
	for i, t := range tweets {
		views[i] = models.TweetView{
			ID:         t.ID,
			Author:     t.Author.ToCompact(),
			Content:    t.Content,
			CreatedAt:  t.CreatedAt,
			LikesCount: counts[t.ID],
			IsLiked:    liked[t.ID],
		}
	}
	return views, nil
}
