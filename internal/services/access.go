package services

import (
	"context"
	"errors"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"gorm.io/gorm"
)

// Validator checks a request struct; failures are errorx Validation errors.
type Validator interface {
	Validate(i any) error
}

// Owned is a resource that exactly one user may mutate.
type Owned interface {
	OwnerID() uint
}

// RequireAuthenticated fails unless actor identifies a signed-in user.
func RequireAuthenticated(actor uint) error {
	if actor == 0 {
		return errorx.New(errorx.Unauthenticated, "authentication required")
	}
	return nil
}

// RequireOwner fails with Forbidden unless actor owns resource.
func RequireOwner(actor uint, resource Owned) error {
	if resource.OwnerID() != actor {
		return errorx.New(errorx.Forbidden, "you are not allowed to modify this resource")
	}
	return nil
}

func lookupUser(ctx context.Context, users repositories.UserRepository, handle string) (*models.User, error) {
	user, err := users.GetUserByUsername(ctx, handle)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.New(errorx.NotFound, "user %q does not exist", handle)
	}
	if err != nil {
		return nil, errorx.Wrap(err, "failed to load user %q", handle)
	}
	return user, nil
}

func lookupTweet(ctx context.Context, tweets repositories.TweetRepository, id uint) (*models.Tweet, error) {
	tweet, err := tweets.GetTweetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.New(errorx.NotFound, "tweet %d does not exist", id)
	}
	if err != nil {
		return nil, errorx.Wrap(err, "failed to load tweet %d", id)
	}
	return tweet, nil
}

// storageErr passes errorx errors through and wraps anything else, such as a
// failed commit, as Internal.
func storageErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	var e *errorx.Error
	if errors.As(err, &e) {
		return err
	}
	return errorx.Wrap(err, "%s", msg)
}
