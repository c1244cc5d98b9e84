package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sajeeb10/pixelgram/internal/models"
	"github.com/sajeeb10/pixelgram/internal/repositories"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users and profiles
type UserHandler struct {
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterUserRoutes registers user and profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/me", h.GetMe)
	g.PUT("/me", h.UpdateMe)
	g.GET("/users", h.ListUsers)
	g.GET("/users/suggestions", h.GetSuggestions)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:username", h.GetProfile)
	g.GET("/users/:username/saved", h.GetSavedPosts)
}

// GetMe retrieves the authenticated user's own profile fields
func (h *UserHandler) GetMe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe overwrites the three mutable profile fields
func (h *UserHandler) UpdateMe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userRepository.UpdateProfile(currentUserID, req.FullName, req.Bio, req.AvatarURL); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update profile")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ProfileResponse is a user profile with their posts and social-graph counts
type ProfileResponse struct {
	models.UserSummary
	Bio            string        `json:"bio"`
	Posts          []models.Post `json:"posts"`
	FollowersCount int64         `json:"followers_count"`
	FollowingCount int64         `json:"following_count"`
	IsFollowing    bool          `json:"is_following"`
}

// GetProfile retrieves a user's public profile by username
func (h *UserHandler) GetProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	username := c.Param("username")

	user, err := h.userRepository.GetUserByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	posts, err := h.postRepository.GetPostsByUserID(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	followersCount, err := h.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	followingCount, err := h.followRepository.GetFollowingCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	isFollowing, err := h.followRepository.IsFollowing(currentUserID, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		UserSummary:    user.ToSummary(),
		Bio:            user.Bio,
		Posts:          posts,
		FollowersCount: followersCount,
		FollowingCount: followingCount,
		IsFollowing:    isFollowing,
	})
}

// GetSavedPosts lists a user's saved posts. Saved lists are private: only
// the owner may read their own.
func (h *UserHandler) GetSavedPosts(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	username := c.Param("username")

	user, err := h.userRepository.GetUserByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	if user.ID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}

	posts, err := h.postRepository.GetSavedPostsByUserID(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, posts)
}

// SearchUsers matches usernames and full names against a substring query
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")

	users, err := h.userRepository.SearchUsers(query, 20)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, users)
}

// GetSuggestions returns users the caller does not follow yet
func (h *UserHandler) GetSuggestions(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	users, err := h.userRepository.GetSuggestions(currentUserID, 5)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, users)
}

// ListUsers returns the first 20 users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userRepository.ListUsers(20)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, users)
}
