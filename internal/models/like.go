package models

import "time"

// Like represents a user's like on a tweet, unique per (tweet, user).
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TweetID   uint      `json:"tweet_id" gorm:"not null;uniqueIndex:idx_tweet_user_like"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_tweet_user_like"`
	CreatedAt time.Time `json:"created_at"`

	Tweet Tweet `json:"-" gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
	User  User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
