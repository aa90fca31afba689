package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/repositories"
)

// openTestDB opens an isolated in-memory sqlite database and creates the
// schema. cache=shared keeps the database alive across the pool's
// connections; the random name isolates tests from each other.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))
	return db
}

// createUser inserts a user with a bcrypt-hashed password and returns it
func createUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Username: username, Password: string(hash)}
	require.NoError(t, repositories.NewPostgresUserRepository(db).CreateUser(user))
	return user
}

// createPost inserts a post and returns it
func createPost(t *testing.T, db *gorm.DB, authorID uint, content string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Content: content}
	require.NoError(t, repositories.NewPostgresPostRepository(db).CreatePost(post))
	return post
}

// newTestAuthService builds an AuthService whose lockout sleeps are recorded
// instead of served, so tests can assert on penalty durations.
func newTestAuthService(db *gorm.DB, slept *[]time.Duration) *AuthService {
	svc := NewAuthService(repositories.NewPostgresUserRepository(db), "test-secret", time.Hour)
	svc.penaltyUnit = time.Millisecond
	svc.sleep = func(d time.Duration) {
		*slept = append(*slept, d)
	}
	return svc
}
