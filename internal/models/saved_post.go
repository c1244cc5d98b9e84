package models

import "time"

// SavedPost represents a bookmarked post by a user
type SavedPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_save_user_post;not null"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_save_user_post;not null"`
	CreatedAt time.Time `json:"created_at"`
}
