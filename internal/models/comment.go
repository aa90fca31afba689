package models

import "time"

// Comment represents a comment on a post. Comments are immutable after
// creation; insertion order (the id) is the presentation order.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
