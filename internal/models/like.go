package models

import "time"

// Like represents a like on a post.
// The combination of UserID and PostID must be unique.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_like_user_post;not null"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_like_user_post;not null"`
	CreatedAt time.Time `json:"created_at"`
}
