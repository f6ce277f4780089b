package testutil

import (
	"context"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns an empty, migrated in-memory SQLite database with foreign
// keys enforced. The pool is pinned to one connection so every query sees the
// same in-memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...), "failed to migrate test database")
	return db
}

// CreateUser inserts a user whose password is "password123".
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Username: username, Email: username + "@example.com", Password: string(hash)}
	require.NoError(t, db.WithContext(context.Background()).Create(user).Error)
	return user
}

func CreateTweet(t *testing.T, db *gorm.DB, author *models.User, content string) *models.Tweet {
	t.Helper()

	tweet := &models.Tweet{AuthorID: author.ID, Content: content}
	require.NoError(t, db.Omit("Author").Create(tweet).Error)
	return tweet
}
