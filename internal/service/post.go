package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/repositories"
)

// PostService creates posts. Posts are immutable once created.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a post for the author. Fails with ErrEmptyPost on
// empty or whitespace-only content; the id is assigned by the store.
func (s *PostService) CreatePost(authorID uint, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyPost
	}
	post := &models.Post{AuthorID: authorID, Content: content}
	if err := s.postRepo.CreatePost(post); err != nil {
		logrus.WithError(err).WithField("author_id", authorID).Error("Failed to create post")
		return nil, ErrInternal
	}
	return post, nil
}
