package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/service"
)

// getUserIDFromContext extracts the authenticated user's ID from the JWT
// claims stored by the auth middleware. Returns 0 when unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// httpError maps domain errors to HTTP status codes
func httpError(err error) error {
	var policy *service.PolicyViolation
	if errors.As(err, &policy) {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"message": policy.Error(),
			"detail":  policy,
		})
	}

	switch {
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrEmptyComment),
		errors.Is(err, service.ErrEmptyPost):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthFailed):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUnknownUser),
		errors.Is(err, service.ErrUnknownPost),
		errors.Is(err, service.ErrNotFollowing):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrAlreadyFollowing):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
