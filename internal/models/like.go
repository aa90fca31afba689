package models

import "time"

// Like represents a like on a post. The composite unique index makes the
// like/unlike toggle race-free: concurrent toggles can never leave two rows
// for the same (user, post) pair.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post;not null"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"created_at"`
}
