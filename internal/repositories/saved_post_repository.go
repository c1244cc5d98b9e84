package repositories

import (
	"github.com/sajeeb10/pixelgram/internal/models"
	"gorm.io/gorm"
)

// SavedPostRepository defines the interface for saved post operations
type SavedPostRepository interface {
	ToggleSave(userID, postID uint) (bool, error)
	IsPostSaved(userID, postID uint) (bool, error)
	GetSavedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
}

// GormSavedPostRepository implements SavedPostRepository
type GormSavedPostRepository struct {
	db *gorm.DB
}

func NewGormSavedPostRepository(db *gorm.DB) *GormSavedPostRepository {
	return &GormSavedPostRepository{db: db}
}

// ToggleSave inserts the saved edge if absent and deletes it if present,
// inside one transaction. Returns whether the post is saved afterwards.
func (r *GormSavedPostRepository) ToggleSave(userID, postID uint) (bool, error) {
	saved := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SavedPost{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.SavedPost{}).Error
		}
		saved = true
		return tx.Create(&models.SavedPost{UserID: userID, PostID: postID}).Error
	})
	if err != nil {
		return false, err
	}
	return saved, nil
}

func (r *GormSavedPostRepository) IsPostSaved(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedPost{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

// GetSavedPostIDs returns which of the given posts the user has saved
func (r *GormSavedPostRepository) GetSavedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(postIDs) == 0 {
		return result, nil
	}
	var saved []models.SavedPost
	err := r.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&saved).Error
	if err != nil {
		return nil, err
	}
	for _, s := range saved {
		result[s.PostID] = true
	}
	return result, nil
}
