package services

import (
	"context"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
)

type FollowResult struct {
	Target models.UserCompact
	// AlreadyFollowing is set when the edge existed before the call.
	AlreadyFollowing bool
}

type UnfollowResult struct {
	Target  models.UserCompact
	Removed bool
}

// FollowService maintains the directed follow graph.
type FollowService struct {
	tx      repositories.Transactor
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

func NewFollowService(tx repositories.Transactor, users repositories.UserRepository, follows repositories.FollowRepository) *FollowService {
	return &FollowService{tx: tx, users: users, follows: follows}
}

// Follow creates the edge actor -> handle. Following someone already followed
// is not an error; the result reports it instead.
func (s *FollowService) Follow(ctx context.Context, actor uint, handle string) (*FollowResult, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var result FollowResult
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		target, err := lookupUser(ctx, s.users, handle)
		if err != nil {
			return err
		}
		if target.ID == actor {
			return errorx.New(errorx.InvalidOperation, "you cannot follow yourself")
		}

		created, err := s.follows.CreateFollow(ctx, &models.Follow{FollowerID: actor, FollowingID: target.ID})
		if err != nil {
			return errorx.Wrap(err, "failed to follow %q", handle)
		}
		result = FollowResult{Target: target.ToCompact(), AlreadyFollowing: !created}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "follow failed")
	}
	return &result, nil
}

// Unfollow removes the edge actor -> handle. Removing a missing edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, actor uint, handle string) (*UnfollowResult, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var result UnfollowResult
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		target, err := lookupUser(ctx, s.users, handle)
		if err != nil {
			return err
		}
		if target.ID == actor {
			return errorx.New(errorx.InvalidOperation, "you cannot unfollow yourself")
		}

		removed, err := s.follows.DeleteFollow(ctx, actor, target.ID)
		if err != nil {
			return errorx.Wrap(err, "failed to unfollow %q", handle)
		}
		result = UnfollowResult{Target: target.ToCompact(), Removed: removed}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "unfollow failed")
	}
	return &result, nil
}

// Following lists who handle follows, oldest first.
func (s *FollowService) Following(ctx context.Context, actor uint, handle string) ([]models.FollowEntry, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	user, err := lookupUser(ctx, s.users, handle)
	if err != nil {
		return nil, err
	}
	entries, err := s.follows.GetFollowing(ctx, user.ID)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to list following of %q", handle)
	}
	return entries, nil
}

// Followers lists who follows handle, oldest first.
func (s *FollowService) Followers(ctx context.Context, actor uint, handle string) ([]models.FollowEntry, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	user, err := lookupUser(ctx, s.users, handle)
	if err != nil {
		return nil, err
	}
	entries, err := s.follows.GetFollowers(ctx, user.ID)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to list followers of %q", handle)
	}
	return entries, nil
}
