package repositories

import (
	"github.com/sajeeb10/pixelgram/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	ToggleLike(userID, postID uint) (bool, error)
	HasUserLikedPost(userID, postID uint) (bool, error)
	GetLikesCountByPostID(postID uint) (int64, error)
	GetLikeCounts(postIDs []uint) (map[uint]int64, error)
	GetLikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
}

// GormLikeRepository implements LikeRepository on the shared gorm store
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GormLikeRepository
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// ToggleLike inserts the like edge if absent and deletes it if present,
// inside one transaction. Returns whether the post is liked afterwards.
func (r *GormLikeRepository) ToggleLike(userID, postID uint) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error
		}
		liked = true
		return tx.Create(&models.Like{UserID: userID, PostID: postID}).Error
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *GormLikeRepository) HasUserLikedPost(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByPostID retrieves the count of likes for a specific post
func (r *GormLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// GetLikeCounts returns a like count per post id for the given posts
func (r *GormLikeRepository) GetLikeCounts(postIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64)
	if len(postIDs) == 0 {
		return result, nil
	}
	rows := []struct {
		PostID uint
		Count  int64
	}{}
	err := r.db.Model(&models.Like{}).
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

// GetLikedPostIDs returns which of the given posts the user has liked
func (r *GormLikeRepository) GetLikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(postIDs) == 0 {
		return result, nil
	}
	var liked []models.Like
	err := r.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&liked).Error
	if err != nil {
		return nil, err
	}
	for _, l := range liked {
		result[l.PostID] = true
	}
	return result, nil
}
