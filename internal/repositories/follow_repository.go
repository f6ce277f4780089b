package repositories

import (
	"context"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(ctx context.Context, follow *models.Follow) (bool, error)
	DeleteFollow(ctx context.Context, followerID, followingID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	GetFollowers(ctx context.Context, userID uint) ([]models.FollowEntry, error)
	GetFollowing(ctx context.Context, userID uint) ([]models.FollowEntry, error)
	GetFollowersCount(ctx context.Context, userID uint) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateFollow inserts the edge unless it already exists. The returned bool is
// false when the unique index absorbed a duplicate.
func (r *PostgresFollowRepository) CreateFollow(ctx context.Context, follow *models.Follow) (bool, error) {
	res := conn(ctx, r.db).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(follow)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteFollow removes the edge. Removing a missing edge is not an error.
func (r *PostgresFollowRepository) DeleteFollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	res := conn(ctx, r.db).Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresFollowRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", followerID, followingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers lists the users following userID, oldest edge first.
func (r *PostgresFollowRepository) GetFollowers(ctx context.Context, userID uint) ([]models.FollowEntry, error) {
	var follows []models.Follow
	err := conn(ctx, r.db).Preload("Follower").
		Where("following_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]models.FollowEntry, len(follows))
	for i, f := range follows {
		entries[i] = models.FollowEntry{User: f.Follower.ToCompact(), CreatedAt: f.CreatedAt}
	}
	return entries, nil
}

// GetFollowing lists the users userID follows, oldest edge first.
func (r *PostgresFollowRepository) GetFollowing(ctx context.Context, userID uint) ([]models.FollowEntry, error) {
	var follows []models.Follow
	err := conn(ctx, r.db).Preload("Following").
		Where("follower_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]models.FollowEntry, len(follows))
	for i, f := range follows {
		entries[i] = models.FollowEntry{User: f.Following.ToCompact(), CreatedAt: f.CreatedAt}
	}
	return entries, nil
}

func (r *PostgresFollowRepository) GetFollowersCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFollowingCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
