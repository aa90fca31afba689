package service

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/repositories"
)

// GraphService owns the follow graph: follow/unfollow mutations and the
// symmetric follower/following queries.
type GraphService struct {
	db *gorm.DB
}

// NewGraphService creates a GraphService
func NewGraphService(db *gorm.DB) *GraphService {
	return &GraphService{db: db}
}

// Follow creates a follow edge from follower to followee. Fails with
// ErrSelfFollow, ErrUnknownUser or ErrAlreadyFollowing. The mutation runs in
// one transaction; the composite unique index keeps concurrent racers from
// creating a duplicate edge.
func (s *GraphService) Follow(followerID, followeeID uint) (*models.Follow, error) {
	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followeeID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repositories.NewPostgresUserRepository(tx).GetUserByID(followeeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownUser
			}
			return err
		}
		return repositories.NewPostgresFollowRepository(tx).CreateFollow(follow)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFollowing
		}
		if errors.Is(err, ErrUnknownUser) {
			return nil, err
		}
		logrus.WithError(err).WithFields(logrus.Fields{
			"follower_id": followerID, "followee_id": followeeID,
		}).Error("Failed to create follow edge")
		return nil, ErrInternal
	}
	return follow, nil
}

// Unfollow deletes the follow edge. Fails with ErrNotFollowing when no such
// edge exists.
func (s *GraphService) Unfollow(followerID, followeeID uint) error {
	deleted, err := repositories.NewPostgresFollowRepository(s.db).DeleteFollow(followerID, followeeID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"follower_id": followerID, "followee_id": followeeID,
		}).Error("Failed to delete follow edge")
		return ErrInternal
	}
	if deleted == 0 {
		return ErrNotFollowing
	}
	return nil
}

// Followers returns the users following userID. Unordered; presentation
// ordering is the caller's concern.
func (s *GraphService) Followers(userID uint) ([]models.User, error) {
	users, err := repositories.NewPostgresFollowRepository(s.db).GetFollowers(userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to query followers")
		return nil, ErrInternal
	}
	return users, nil
}

// Following returns the users userID follows
func (s *GraphService) Following(userID uint) ([]models.User, error) {
	users, err := repositories.NewPostgresFollowRepository(s.db).GetFollowing(userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to query following")
		return nil, ErrInternal
	}
	return users, nil
}
