package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/service"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	engagementService *service.EngagementService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(engagementService *service.EngagementService) *CommentHandler {
	return &CommentHandler{engagementService: engagementService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.engagementService.AddComment(currentUserID, uint(postID), req.Text)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves all comments for a post, oldest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	comments, err := h.engagementService.CommentsFor(uint(postID))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, comments)
}
