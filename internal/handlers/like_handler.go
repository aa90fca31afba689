package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/twitterlike/backend/internal/service"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	engagementService *service.EngagementService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engagementService *service.EngagementService) *LikeHandler {
	return &LikeHandler{engagementService: engagementService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.ToggleLike)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
}

// ToggleLike likes the post if not yet liked by the current user, unlikes it
// otherwise
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	liked, err := h.engagementService.ToggleLike(currentUserID, uint(postID))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": liked}})
}

// GetLikesCountForPost retrieves the total number of likes for a post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	count, err := h.engagementService.LikeCount(uint(postID))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}
