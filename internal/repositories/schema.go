package repositories

import (
	"errors"
	"fmt"

	"github.com/twitterlike/backend/internal/models"
	"gorm.io/gorm"
)

// ErrStoreNotInitialized means the required tables are missing. Schema
// creation is an external setup step (cmd/seed); the server refuses to run
// against an uninitialized store instead of migrating on the fly.
var ErrStoreNotInitialized = errors.New("store not initialized: run the seed command to create the schema")

// CheckSchema verifies that every table the repositories rely on exists.
func CheckSchema(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, model := range []interface{}{
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
	} {
		if !migrator.HasTable(model) {
			return fmt.Errorf("%w (missing table for %T)", ErrStoreNotInitialized, model)
		}
	}
	return nil
}

// Migrate creates or updates the schema for all models. Called by cmd/seed,
// never by the server itself.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
	)
}
