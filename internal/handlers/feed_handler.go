package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/twitterlike/backend/internal/service"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService *service.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/profile/posts", h.GetOwnPosts)
}

// GetFeed returns the timeline for the current user: posts from followed
// accounts, newest first, with like counts. An empty feed is a 200 with an
// empty list.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	items, err := h.feedService.TimelineFor(currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": items}})
}

// GetOwnPosts returns the current user's own posts, newest first
func (h *FeedHandler) GetOwnPosts(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	items, err := h.feedService.ProfileFor(currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": items}})
}
