package models

import "time"

const TweetMaxLength = 140

// Tweet is owned exclusively by its author.
type Tweet struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"size:140;not null;check:chk_tweets_content_length,length(content) BETWEEN 1 AND 140"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	Author User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// CreateTweetRequest defines the request body for posting a tweet
type CreateTweetRequest struct {
	Content string `json:"content" form:"content" validate:"required,max=140"`
}

// TweetView is a tweet as shown to a particular viewer.
type TweetView struct {
	ID         uint        `json:"id"`
	Author     UserCompact `json:"author"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
	LikesCount int64       `json:"likes_count"`
	IsLiked    bool        `json:"is_liked"`
}

func (t *Tweet) OwnerID() uint {
	return t.AuthorID
}
