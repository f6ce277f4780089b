package services

import (
	"context"
	"errors"
	"strings"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"gorm.io/gorm"
)

// TweetService owns the tweet lifecycle: posting, reading and author-only deletion.
type TweetService struct {
	tx       repositories.Transactor
	tweets   repositories.TweetRepository
	likes    repositories.LikeRepository
	validate Validator
}

func NewTweetService(tx repositories.Transactor, tweets repositories.TweetRepository, likes repositories.LikeRepository, validate Validator) *TweetService {
	return &TweetService{tx: tx, tweets: tweets, likes: likes, validate: validate}
}

// Create posts a tweet. Surrounding whitespace is not part of the content, so
// a blank tweet is rejected as empty.
func (s *TweetService) Create(ctx context.Context, actor uint, content string) (*models.Tweet, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if err := s.validate.Validate(&models.CreateTweetRequest{Content: content}); err != nil {
		return nil, err
	}

	tweet := &models.Tweet{AuthorID: actor, Content: content}
	if err := s.tweets.CreateTweet(ctx, tweet); err != nil {
		return nil, errorx.Wrap(err, "failed to create tweet")
	}
	return tweet, nil
}

// Get returns a single tweet as seen by actor.
func (s *TweetService) Get(ctx context.Context, actor uint, id uint) (*models.TweetView, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	tweet, err := lookupTweet(ctx, s.tweets, id)
	if err != nil {
		return nil, err
	}

	count, err := s.likes.GetLikesCountByTweetID(ctx, id)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to count likes of tweet %d", id)
	}
	liked, err := s.likes.HasUserLikedTweet(ctx, id, actor)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to check like on tweet %d", id)
	}

	return &models.TweetView{
		ID:         tweet.ID,
		Author:     tweet.Author.ToCompact(),
		Content:    tweet.Content,
		CreatedAt:  tweet.CreatedAt,
		LikesCount: count,
		IsLiked:    liked,
	}, nil
}

// Timeline returns every tweet, newest first.
func (s *TweetService) Timeline(ctx context.Context, actor uint) ([]models.TweetView, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	tweets, err := s.tweets.GetAllTweets(ctx)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to load timeline")
	}
	return tweetViews(ctx, s.likes, actor, tweets)
}

// Delete removes a tweet and its likes in one transaction. Only the author may
// delete a tweet.
func (s *TweetService) Delete(ctx context.Context, actor uint, id uint) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		tweet, err := lookupTweet(ctx, s.tweets, id)
		if err != nil {
			return err
		}
		if err := RequireOwner(actor, tweet); err != nil {
			return err
		}

		if _, err := s.likes.DeleteLikesByTweetID(ctx, id); err != nil {
			return errorx.Wrap(err, "failed to delete likes of tweet %d", id)
		}
		err = s.tweets.DeleteTweet(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "tweet %d does not exist", id)
		}
		if err != nil {
			return errorx.Wrap(err, "failed to delete tweet %d", id)
		}
		return nil
	})
	return storageErr(err, "delete tweet failed")
}
