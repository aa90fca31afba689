package service

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/repositories"
)

// FeedItem is one timeline entry: a post with its author and like count.
type FeedItem struct {
	Author    string      `json:"author"`
	Post      models.Post `json:"post"`
	LikeCount int64       `json:"like_count"`
}

// FeedService composes the follow graph, posts and like counts into
// timelines. Reads run inside one transaction so the counts reflect a
// consistent snapshot.
type FeedService struct {
	db *gorm.DB
}

// NewFeedService creates a FeedService
func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// TimelineFor returns posts from the accounts the user follows, newest
// first. An empty timeline is a normal result, not an error.
func (s *FeedService) TimelineFor(userID uint) ([]FeedItem, error) {
	var items []FeedItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		followingIDs, err := repositories.NewPostgresFollowRepository(tx).GetFollowingIDs(userID)
		if err != nil {
			return err
		}
		posts, err := repositories.NewPostgresPostRepository(tx).GetPostsByAuthorIDs(followingIDs)
		if err != nil {
			return err
		}
		items, err = s.annotate(tx, posts)
		return err
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to compose timeline")
		return nil, ErrInternal
	}
	return items, nil
}

// ProfileFor returns the user's own posts, newest first, with like counts.
// Fails with ErrUnknownUser when the user does not resolve.
func (s *FeedService) ProfileFor(userID uint) ([]FeedItem, error) {
	var items []FeedItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repositories.NewPostgresUserRepository(tx).GetUserByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownUser
			}
			return err
		}
		posts, err := repositories.NewPostgresPostRepository(tx).GetPostsByAuthorID(userID)
		if err != nil {
			return err
		}
		items, err = s.annotate(tx, posts)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			return nil, err
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to compose profile")
		return nil, ErrInternal
	}
	return items, nil
}

// annotate attaches author usernames and like counts to the posts,
// preserving their order.
func (s *FeedService) annotate(tx *gorm.DB, posts []models.Post) ([]FeedItem, error) {
	items := make([]FeedItem, 0, len(posts))
	userRepo := repositories.NewPostgresUserRepository(tx)
	likeRepo := repositories.NewPostgresLikeRepository(tx)

	authors := make(map[uint]string)
	for _, post := range posts {
		username, ok := authors[post.AuthorID]
		if !ok {
			author, err := userRepo.GetUserByID(post.AuthorID)
			if err != nil {
				return nil, err
			}
			username = author.Username
			authors[post.AuthorID] = username
		}
		count, err := likeRepo.GetLikesCountByPostID(post.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, FeedItem{Author: username, Post: post, LikeCount: count})
	}
	return items, nil
}
