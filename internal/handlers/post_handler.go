package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/twitterlike/backend/internal/metrics"
	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/service"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
}

// CreatePost creates a new post authored by the current user
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.CreatePost(currentUserID, req.Content)
	if err != nil {
		return httpError(err)
	}

	metrics.PostsCreated.Inc()
	return c.JSON(http.StatusCreated, post)
}
