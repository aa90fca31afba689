package service

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/repositories"
)

// EngagementService owns likes and comments on posts.
type EngagementService struct {
	db *gorm.DB
}

// NewEngagementService creates an EngagementService
func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// ToggleLike likes the post if the user has not liked it yet and unlikes it
// otherwise, returning the resulting liked state. Fails with ErrUnknownPost.
// The whole toggle is one transaction and the (user, post) unique index
// arbitrates concurrent toggles, so two racers can never both insert.
func (s *EngagementService) ToggleLike(userID, postID uint) (liked bool, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		likeRepo := repositories.NewPostgresLikeRepository(tx)

		deleted, err := likeRepo.DeleteLike(userID, postID)
		if err != nil {
			return err
		}
		if deleted > 0 {
			liked = false
			return nil
		}

		if _, err := repositories.NewPostgresPostRepository(tx).GetPostByID(postID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownPost
			}
			return err
		}

		if err := likeRepo.CreateLike(&models.Like{UserID: userID, PostID: postID}); err != nil {
			// A concurrent toggle won the insert race; exactly one Like row
			// exists either way.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
		}
		liked = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUnknownPost) {
			return false, err
		}
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID, "post_id": postID,
		}).Error("Failed to toggle like")
		return false, ErrInternal
	}
	return liked, nil
}

// LikeCount returns the number of likes on the post
func (s *EngagementService) LikeCount(postID uint) (int64, error) {
	count, err := repositories.NewPostgresLikeRepository(s.db).GetLikesCountByPostID(postID)
	if err != nil {
		logrus.WithError(err).WithField("post_id", postID).Error("Failed to count likes")
		return 0, ErrInternal
	}
	return count, nil
}

// AddComment creates a comment on the post. Fails with ErrEmptyComment on
// empty or whitespace-only text and ErrUnknownPost on a missing post.
func (s *EngagementService) AddComment(authorID, postID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	comment := &models.Comment{AuthorID: authorID, PostID: postID, Text: text}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repositories.NewPostgresPostRepository(tx).GetPostByID(postID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownPost
			}
			return err
		}
		return repositories.NewPostgresCommentRepository(tx).CreateComment(comment)
	})
	if err != nil {
		if errors.Is(err, ErrUnknownPost) {
			return nil, err
		}
		logrus.WithError(err).WithFields(logrus.Fields{
			"author_id": authorID, "post_id": postID,
		}).Error("Failed to create comment")
		return nil, ErrInternal
	}
	return comment, nil
}

// CommentsFor returns the post's comments in insertion order, oldest first.
// Fails with ErrUnknownPost on a missing post.
func (s *EngagementService) CommentsFor(postID uint) ([]models.Comment, error) {
	if _, err := repositories.NewPostgresPostRepository(s.db).GetPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownPost
		}
		logrus.WithError(err).WithField("post_id", postID).Error("Failed to look up post")
		return nil, ErrInternal
	}
	comments, err := repositories.NewPostgresCommentRepository(s.db).GetCommentsByPostID(postID)
	if err != nil {
		logrus.WithError(err).WithField("post_id", postID).Error("Failed to query comments")
		return nil, ErrInternal
	}
	return comments, nil
}
