package repositories

import (
	"github.com/sajeeb10/pixelgram/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPostsByUserID(userID uint) ([]models.Post, error)
	GetRandomPosts(limit int) ([]models.AuthoredPost, error)
	GetSavedPostsByUserID(userID uint) ([]models.AuthoredPost, error)
	DeletePostCascade(postID uint) error
}

// GormPostRepository implements PostRepository on the shared gorm store
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *GormPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *GormPostRepository) GetAllPosts() ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) GetPostsByUserID(userID uint) ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// GetRandomPosts returns a random sample of posts with author info.
// RANDOM() is understood by both sqlite and postgres.
func (r *GormPostRepository) GetRandomPosts(limit int) ([]models.AuthoredPost, error) {
	posts := []models.AuthoredPost{}
	err := r.db.Model(&models.Post{}).
		Select("posts.*, users.username, users.avatar_url").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("RANDOM()").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) GetSavedPostsByUserID(userID uint) ([]models.AuthoredPost, error) {
	posts := []models.AuthoredPost{}
	err := r.db.Model(&models.Post{}).
		Select("posts.*, users.username, users.avatar_url").
		Joins("JOIN saved_posts ON saved_posts.post_id = posts.id").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("saved_posts.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&posts).Error
	return posts, err
}

// DeletePostCascade removes the post's likes, comments and saved edges
// followed by the post row itself, all in one transaction so no reader
// observes orphaned rows.
func (r *GormPostRepository) DeletePostCascade(postID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.SavedPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
}
