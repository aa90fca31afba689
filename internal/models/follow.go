package models

import "time"

// Follow represents a directed follow relationship. The composite unique
// index guarantees at most one edge per (follower, following) pair even
// under concurrent writers.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	Follower    User      `json:"-" gorm:"foreignKey:FollowerID"`
	Following   User      `json:"-" gorm:"foreignKey:FollowingID"`
	CreatedAt   time.Time `json:"created_at"`
}
