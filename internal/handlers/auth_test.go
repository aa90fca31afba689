package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/twitterlike/backend/internal/repositories"
	"github.com/twitterlike/backend/internal/router"
	"github.com/twitterlike/backend/pkg/config"
	"github.com/twitterlike/backend/validators"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))

	e := echo.New()
	e.Validator = validators.NewValidator()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	router.SetupRoutes(e, db, cfg)
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginAndFeedOverHTTP(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", `{"username":"alice","password":"abc12!"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/register", `{"username":"bob","password":"xyz45#"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	// Weak password is rejected with the policy breakdown.
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/register", `{"username":"carol","password":"weak"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Duplicate username conflicts.
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/register", `{"username":"alice","password":"xyz45#"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"abc12!"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loginResp struct {
		Token     string `json:"token"`
		UserID    uint   `json:"user_id"`
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp.Token)
	assert.NotEmpty(t, loginResp.SessionID)

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"username":"bob","password":"xyz45#"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var bobResp struct {
		Token  string `json:"token"`
		UserID uint   `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bobResp))

	// Unauthenticated access is rejected.
	rec = doJSON(e, http.MethodGet, "/api/v1/feed", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Alice follows bob, bob posts, alice sees it in her feed.
	rec = doJSON(e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", bobResp.UserID), "", loginResp.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/api/v1/posts", `{"content":"hello"}`, bobResp.Token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/v1/feed", "", loginResp.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello")

	// Self-follow is a 400, double follow a 409.
	rec = doJSON(e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", loginResp.UserID), "", loginResp.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", bobResp.UserID), "", loginResp.Token)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginFailureOverHTTP(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", `{"username":"alice","password":"abc12!"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_id")
}
