package repositories

import (
	"github.com/sajeeb10/pixelgram/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByPostID(postID uint) ([]models.CommentWithAuthor, error)
	GetCommentCounts(postIDs []uint) (map[uint]int64, error)
}

// GormCommentRepository implements CommentRepository on the shared gorm store
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentsByPostID returns a post's comments with author info, oldest first
func (r *GormCommentRepository) GetCommentsByPostID(postID uint) ([]models.CommentWithAuthor, error) {
	comments := []models.CommentWithAuthor{}
	err := r.db.Model(&models.Comment{}).
		Select("comments.*, users.username, users.avatar_url").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC, comments.id ASC").
		Find(&comments).Error
	return comments, err
}

// GetCommentCounts returns a comment count per post id for the given posts
func (r *GormCommentRepository) GetCommentCounts(postIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64)
	if len(postIDs) == 0 {
		return result, nil
	}
	rows := []struct {
		PostID uint
		Count  int64
	}{}
	err := r.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.PostID] = row.Count
	}
	return result, nil
}
