package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sajeeb10/pixelgram/internal/models"
	"github.com/sajeeb10/pixelgram/internal/repositories"
	"github.com/sajeeb10/pixelgram/internal/storage"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests for creating and deleting posts
type PostHandler struct {
	postRepository repositories.PostRepository
	uploads        *storage.Store
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, uploads *storage.Store) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		uploads:        uploads,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a post from either an uploaded file or a direct URL.
// Multipart requests carry the media in the "file" field; otherwise the
// "url" field is persisted verbatim.
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	url := req.URL
	if fh, err := c.FormFile("file"); err == nil {
		url, err = h.uploads.Save(fh)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store uploaded file")
		}
	}
	if url == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Either a file or a url is required")
	}

	post := &models.Post{
		UserID:  currentUserID,
		Type:    req.Type,
		URL:     url,
		Caption: req.Caption,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	return c.JSON(http.StatusOK, echo.Map{"id": post.ID})
}

// DeletePost deletes a post owned by the caller along with its likes,
// comments and saved edges. The backing upload file is removed best-effort
// after the transaction commits.
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	if post.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}

	if err := h.postRepository.DeletePostCascade(post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
	}

	// File cleanup never fails the request
	if err := h.uploads.Remove(post.URL); err != nil {
		log.Printf("Failed to remove upload for post %d: %v", post.ID, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
