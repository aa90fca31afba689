package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/twitterlike/backend/internal/metrics"
	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/service"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

// Register handles new user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(req)
	if err != nil {
		return httpError(err)
	}

	metrics.Registrations.Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login handles user authentication. The response carries the login session
// id; a client retrying a failed login should send it back so consecutive
// failures count against the same lockout session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, sessionID, err := h.authService.Login(req.SessionID, req.Username, req.Password)
	if err != nil {
		metrics.FailedLogins.Inc()
		if echoErr, ok := httpError(err).(*echo.HTTPError); ok {
			echoErr.Message = echo.Map{"message": echoErr.Message, "session_id": sessionID}
			return echoErr
		}
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token":      token,
		"user_id":    user.ID,
		"session_id": sessionID,
	})
}
