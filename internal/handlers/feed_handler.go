package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sajeeb10/pixelgram/internal/models"
	"github.com/sajeeb10/pixelgram/internal/repositories"
)

// FeedHandler handles the main feed and the explore listing
type FeedHandler struct {
	postRepository      repositories.PostRepository
	userRepository      repositories.UserRepository
	likeRepository      repositories.LikeRepository
	savedPostRepository repositories.SavedPostRepository
	commentRepository   repositories.CommentRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	savedPostRepo repositories.SavedPostRepository,
	commentRepo repositories.CommentRepository,
) *FeedHandler {
	return &FeedHandler{
		postRepository:      postRepo,
		userRepository:      userRepo,
		likeRepository:      likeRepo,
		savedPostRepository: savedPostRepo,
		commentRepository:   commentRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts", h.GetFeed)
	g.GET("/explore", h.Explore)
}

// GetFeed returns all posts newest-first, annotated with author info,
// like/comment counts and the caller's liked/saved flags
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	posts, err := h.postRepository.GetAllPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	postIDs := make([]uint, len(posts))
	authorIDs := make(map[uint]bool)
	for i, p := range posts {
		postIDs[i] = p.ID
		authorIDs[p.UserID] = true
	}

	// Build author map
	authorMap := make(map[uint]models.UserSummary)
	for id := range authorIDs {
		user, err := h.userRepository.GetUserByID(id)
		if err != nil {
			continue
		}
		authorMap[id] = user.ToSummary()
	}

	likeCounts, err := h.likeRepository.GetLikeCounts(postIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	commentCounts, err := h.commentRepository.GetCommentCounts(postIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	likedMap, err := h.likeRepository.GetLikedPostIDs(currentUserID, postIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	savedMap, err := h.savedPostRepository.GetSavedPostIDs(currentUserID, postIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	feed := make([]models.FeedPost, len(posts))
	for i, p := range posts {
		author := authorMap[p.UserID]
		feed[i] = models.FeedPost{
			Post:          p,
			Username:      author.Username,
			AvatarURL:     author.AvatarURL,
			LikesCount:    likeCounts[p.ID],
			CommentsCount: commentCounts[p.ID],
			IsLiked:       boolToFlag(likedMap[p.ID]),
			IsSaved:       boolToFlag(savedMap[p.ID]),
		}
	}

	return c.JSON(http.StatusOK, feed)
}

// Explore returns a random sample of posts with author info
func (h *FeedHandler) Explore(c echo.Context) error {
	posts, err := h.postRepository.GetRandomPosts(30)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, posts)
}

func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
