package services

import (
	"context"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
)

type Profile struct {
	User           models.UserCompact `json:"user"`
	Tweets         []models.TweetView `json:"tweets"`
	FollowingCount int64              `json:"following_count"`
	FollowerCount  int64              `json:"follower_count"`
	IsFollowing    bool               `json:"is_following"`
	IsSelf         bool               `json:"is_self"`
}

// ProfileService composes a user's page from the identity, graph, content and
// engagement stores. It never writes.
type ProfileService struct {
	users   repositories.UserRepository
	follows repositories.FollowRepository
	tweets  repositories.TweetRepository
	likes   repositories.LikeRepository
}

func NewProfileService(
	users repositories.UserRepository,
	follows repositories.FollowRepository,
	tweets repositories.TweetRepository,
	likes repositories.LikeRepository,
) *ProfileService {
	return &ProfileService{users: users, follows: follows, tweets: tweets, likes: likes}
}

func (s *ProfileService) Get(ctx context.Context, viewer uint, handle string) (*Profile, error) {
	if err := RequireAuthenticated(viewer); err != nil {
		return nil, err
	}
	user, err := lookupUser(ctx, s.users, handle)
	if err != nil {
		return nil, err
	}

	tweets, err := s.tweets.GetTweetsByAuthorID(ctx, user.ID)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to load tweets of %q", handle)
	}
	views, err := tweetViews(ctx, s.likes, viewer, tweets)
	if err != nil {
		return nil, err
	}

	following, err := s.follows.GetFollowingCount(ctx, user.ID)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to count following of %q", handle)
	}
	followers, err := s.follows.GetFollowersCount(ctx, user.ID)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to count followers of %q", handle)
	}

	isFollowing := false
	if viewer != user.ID {
		isFollowing, err = s.follows.IsFollowing(ctx, viewer, user.ID)
		if err != nil {
			return nil, errorx.Wrap(err, "failed to check follow of %q", handle)
		}
	}

	return &Profile{
		User:           user.ToCompact(),
		Tweets:         views,
		FollowingCount: following,
		FollowerCount:  followers,
		IsFollowing:    isFollowing,
		IsSelf:         viewer == user.ID,
	}, nil
}
