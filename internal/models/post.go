package models

import "time"

const (
	PostTypeImage = "image"
	PostTypeVideo = "video"
)

// Post represents a single image or video shared by a user
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Type      string    `json:"type"` // 'image' or 'video'
	URL       string    `json:"url"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post.
// URL is optional when a multipart file is attached instead.
type CreatePostRequest struct {
	Type    string `json:"type" form:"type" validate:"required,oneof=image video"`
	URL     string `json:"url" form:"url" validate:"omitempty,max=2048"`
	Caption string `json:"caption" form:"caption" validate:"max=2200"`
}

// FeedPost is a post annotated with author info and per-viewer flags.
// IsLiked/IsSaved are 0/1 counts so the JSON matches what the count
// subqueries produce.
type FeedPost struct {
	Post
	Username      string `json:"username"`
	AvatarURL     string `json:"avatar_url"`
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
	IsLiked       int    `json:"is_liked"`
	IsSaved       int    `json:"is_saved"`
}

// AuthoredPost is a post annotated with author info only, used by the
// explore and saved-posts listings.
type AuthoredPost struct {
	Post
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}
