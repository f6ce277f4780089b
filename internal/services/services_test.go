package services

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/internal/testutil"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"github.com/anonto42/tweetbox/backend/validators"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type env struct {
	db *gorm.DB

	accounts *AccountService
	follows  *FollowService
	likes    *LikeService
	tweets   *TweetService
	profiles *ProfileService

	alice *models.User
	bob   *models.User
}

func newEnv(t *testing.T) *env {
	db := testutil.NewTestDB(t)
	tx := repositories.NewGormTransactor(db)
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	tweetRepo := repositories.NewPostgresTweetRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	v := validators.NewValidator()

	return &env{
		db:       db,
		accounts: NewAccountService(userRepo, v, bcrypt.MinCost),
		follows:  NewFollowService(tx, userRepo, followRepo),
		likes:    NewLikeService(tx, tweetRepo, likeRepo),
		tweets:   NewTweetService(tx, tweetRepo, likeRepo, v),
		profiles: NewProfileService(userRepo, followRepo, tweetRepo, likeRepo),
		alice:    testutil.CreateUser(t, db, "alice"),
		bob:      testutil.CreateUser(t, db, "bob"),
	}
}

func (e *env) count(t *testing.T, model any, query string, args ...any) int64 {
	var n int64
	require.NoError(t, e.db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func requireCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, errorx.CodeOf(err), err.Error())
}

func TestRequireAuthenticated(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.follows.Follow(ctx, 0, "bob")
	requireCode(t, err, errorx.Unauthenticated)
	_, err = e.likes.Like(ctx, 0, 1)
	requireCode(t, err, errorx.Unauthenticated)
	_, err = e.tweets.Create(ctx, 0, "hello")
	requireCode(t, err, errorx.Unauthenticated)
	_, err = e.profiles.Get(ctx, 0, "bob")
	requireCode(t, err, errorx.Unauthenticated)
}

func TestStorageErr(t *testing.T) {
	require.NoError(t, storageErr(nil, "unused"))

	cause := errors.New("commit failed")
	err := storageErr(cause, "like 100% failed")
	requireCode(t, err, errorx.Internal)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "like 100% failed: commit failed", err.Error())

	notFound := errorx.New(errorx.NotFound, "tweet 1 does not exist")
	require.Same(t, notFound, storageErr(notFound, "like failed"))
}
