package repositories

import (
	"context"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet *models.Tweet) error
	GetTweetByID(ctx context.Context, id uint) (*models.Tweet, error)
	GetTweetsByAuthorID(ctx context.Context, authorID uint) ([]models.Tweet, error)
	GetAllTweets(ctx context.Context) ([]models.Tweet, error)
	DeleteTweet(ctx context.Context, id uint) error
}

// PostgresTweetRepository implements TweetRepository for PostgreSQL
type PostgresTweetRepository struct {
	db *gorm.DB
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository
func NewPostgresTweetRepository(db *gorm.DB) *PostgresTweetRepository {
	return &PostgresTweetRepository{db: db}
}

func (r *PostgresTweetRepository) CreateTweet(ctx context.Context, tweet *models.Tweet) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(tweet).Error
}

// GetTweetByID retrieves a tweet with its author
func (r *PostgresTweetRepository) GetTweetByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := conn(ctx, r.db).Preload("Author").First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// GetTweetsByAuthorID retrieves an author's tweets, newest first
func (r *PostgresTweetRepository) GetTweetsByAuthorID(ctx context.Context, authorID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := conn(ctx, r.db).Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&tweets).Error
	return tweets, err
}

// GetAllTweets retrieves every tweet, newest first
func (r *PostgresTweetRepository) GetAllTweets(ctx context.Context) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := conn(ctx, r.db).Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&tweets).Error
	return tweets, err
}

func (r *PostgresTweetRepository) DeleteTweet(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&models.Tweet{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
