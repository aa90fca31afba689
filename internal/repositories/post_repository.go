package repositories

import (
	"github.com/twitterlike/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByAuthorIDs(authorIDs []uint) ([]models.Post, error)
	GetPostsByAuthorID(authorID uint) ([]models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts a new post; the id is assigned by the store
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostsByAuthorIDs retrieves all posts by any of the given authors,
// newest first (post ids are monotonically increasing by creation)
func (r *PostgresPostRepository) GetPostsByAuthorIDs(authorIDs []uint) ([]models.Post, error) {
	var posts []models.Post
	if len(authorIDs) == 0 {
		return posts, nil
	}
	if err := r.db.Where("author_id IN ?", authorIDs).Order("id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByAuthorID retrieves one author's posts, newest first
func (r *PostgresPostRepository) GetPostsByAuthorID(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("author_id = ?", authorID).Order("id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
