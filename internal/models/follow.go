package models

import "time"

// Follow is a directed edge: Follower observes Following's tweets.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"not null;uniqueIndex:idx_follower_following;check:chk_follows_no_self_follow,follower_id <> following_id"`
	FollowingID uint      `json:"following_id" gorm:"not null;index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`

	Follower  User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following User `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

// FollowEntry is one row of a following or follower list.
type FollowEntry struct {
	User      UserCompact `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}
