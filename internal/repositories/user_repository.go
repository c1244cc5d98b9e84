package repositories

import (
	"github.com/sajeeb10/pixelgram/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateProfile(userID uint, fullName, bio, avatarURL string) error
	SearchUsers(query string, limit int) ([]models.UserSummary, error)
	ListUsers(limit int) ([]models.UserSummary, error)
	GetSuggestions(forUserID uint, limit int) ([]models.UserSummary, error)
}

// GormUserRepository implements UserRepository on the shared gorm store
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites the three mutable profile fields unconditionally
func (r *GormUserRepository) UpdateProfile(userID uint, fullName, bio, avatarURL string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"full_name":  fullName,
		"bio":        bio,
		"avatar_url": avatarURL,
	}).Error
}

// SearchUsers performs a case-insensitive substring match against username
// and full name. LOWER on both sides keeps the match case-insensitive on
// postgres too, where LIKE is case-sensitive.
func (r *GormUserRepository) SearchUsers(query string, limit int) ([]models.UserSummary, error) {
	users := []models.UserSummary{}
	pattern := "%" + query + "%"
	err := r.db.Model(&models.User{}).
		Where("LOWER(username) LIKE LOWER(?) OR LOWER(full_name) LIKE LOWER(?)", pattern, pattern).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *GormUserRepository) ListUsers(limit int) ([]models.UserSummary, error) {
	users := []models.UserSummary{}
	err := r.db.Model(&models.User{}).Limit(limit).Find(&users).Error
	return users, err
}

// GetSuggestions returns users the given user does not already follow,
// excluding the user themself
func (r *GormUserRepository) GetSuggestions(forUserID uint, limit int) ([]models.UserSummary, error) {
	users := []models.UserSummary{}
	err := r.db.Model(&models.User{}).
		Where("id <> ?", forUserID).
		Where("id NOT IN (?)",
			r.db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", forUserID),
		).
		Limit(limit).
		Find(&users).Error
	return users, err
}
