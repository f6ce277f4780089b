package repositories

import (
	"context"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) error
	DeleteLike(ctx context.Context, tweetID, userID uint) (bool, error)
	DeleteLikesByTweetID(ctx context.Context, tweetID uint) (int64, error)
	HasUserLikedTweet(ctx context.Context, tweetID, userID uint) (bool, error)
	GetLikesCountByTweetID(ctx context.Context, tweetID uint) (int64, error)
	GetLikesCounts(ctx context.Context, tweetIDs []uint) (map[uint]int64, error)
	GetLikedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) (map[uint]bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts a like. A second like by the same user on the same tweet
// fails with gorm.ErrDuplicatedKey.
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(like).Error
}

// DeleteLike removes a like and reports whether one existed
func (r *PostgresLikeRepository) DeleteLike(ctx context.Context, tweetID, userID uint) (bool, error) {
	res := conn(ctx, r.db).Where("tweet_id = ? AND user_id = ?", tweetID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteLikesByTweetID removes every like of a tweet
func (r *PostgresLikeRepository) DeleteLikesByTweetID(ctx context.Context, tweetID uint) (int64, error) {
	res := conn(ctx, r.db).Where("tweet_id = ?", tweetID).Delete(&models.Like{})
	return res.RowsAffected, res.Error
}

func (r *PostgresLikeRepository) HasUserLikedTweet(ctx context.Context, tweetID, userID uint) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.Like{}).Where("tweet_id = ? AND user_id = ?", tweetID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresLikeRepository) GetLikesCountByTweetID(ctx context.Context, tweetID uint) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.Like{}).Where("tweet_id = ?", tweetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikesCounts returns the like count of each tweet in one grouped query.
// Tweets without likes are absent from the map.
func (r *PostgresLikeRepository) GetLikesCounts(ctx context.Context, tweetIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64)
	if len(tweetIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		TweetID uint
		Total   int64
	}
	err := conn(ctx, r.db).Model(&models.Like{}).
		Select("tweet_id, COUNT(*) AS total").
		Where("tweet_id IN ?", tweetIDs).
		Group("tweet_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.TweetID] = row.Total
	}
	return result, nil
}

// GetLikedTweetIDs returns the subset of tweetIDs liked by userID
func (r *PostgresLikeRepository) GetLikedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(tweetIDs) == 0 {
		return result, nil
	}
	var liked []uint
	err := conn(ctx, r.db).Model(&models.Like{}).
		Where("user_id = ? AND tweet_id IN ?", userID, tweetIDs).
		Pluck("tweet_id", &liked).Error
	if err != nil {
		return nil, err
	}
	for _, id := range liked {
		result[id] = true
	}
	return result, nil
}
