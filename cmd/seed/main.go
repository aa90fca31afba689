// Command seed creates the database schema and loads the initial data set.
// Running it is the external setup step the server refuses to start without.
package main

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/repositories"
	"github.com/twitterlike/backend/pkg/config"
)

func main() {
	db, err := config.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := repositories.Migrate(db.Postgres); err != nil {
		logrus.Fatalf("Failed to migrate schema: %v", err)
	}
	logrus.Info("Schema created")

	var count int64
	if err := db.Postgres.Model(&models.User{}).Count(&count).Error; err != nil {
		logrus.Fatalf("Failed to inspect users table: %v", err)
	}
	if count > 0 {
		logrus.Info("Database already seeded, nothing to do")
		return
	}

	if err := seed(db.Postgres); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}
	logrus.Info("Seed data loaded")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		type account struct {
			username, password, fullName string
		}
		accounts := []account{
			{"admin", "admin", "admin"},
			{"Nolan", "hey123!", "Nolan"},
			{"Ana", "aushgh213$", "Ana"},
			{"Alan", "aue734$", "Alan"},
			{"DataRox", "wgksh643!", "Joe Smith"},
			{"PythonEnthusiast", "hey123!", "Ken Henry"},
		}
		for _, a := range accounts {
			hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := &models.User{Username: a.username, Password: string(hash), FullName: a.fullName}
			if err := tx.Create(user).Error; err != nil {
				return err
			}
		}

		posts := []models.Post{
			{AuthorID: 5, Content: "I consider myself a data pro"},
			{AuthorID: 5, Content: "I accidentally deleted the project i've been working on for 36 hours..."},
			{AuthorID: 5, Content: "comment so i feel validated please"},
			{AuthorID: 2, Content: "First tweet ever. Hey ya'll"},
			{AuthorID: 4, Content: "so mad at my wifi right now..."},
			{AuthorID: 3, Content: "UberEats > paying off my student loans"},
			{AuthorID: 3, Content: "why am i the way that i am"},
			{AuthorID: 4, Content: "why don't we still know where the pyramids came from? What's your theory?"},
			{AuthorID: 5, Content: "i can't catch up on sleep"},
			{AuthorID: 2, Content: "What's everyone's favourite thing about Twitter?"},
			{AuthorID: 6, Content: "Starbucks Christmas drinks are back"},
			{AuthorID: 6, Content: "Why did the python programmer go broke? Because he missed too many commas."},
			{AuthorID: 5, Content: "I told my wife she should embrace her mistakes. She gave me a hug"},
			{AuthorID: 3, Content: "What's everyone's favourite song right now?"},
			{AuthorID: 6, Content: "More money more problems"},
		}
		if err := tx.Create(&posts).Error; err != nil {
			return err
		}

		follows := []models.Follow{
			{FollowerID: 5, FollowingID: 2}, {FollowerID: 5, FollowingID: 3}, {FollowerID: 5, FollowingID: 6},
			{FollowerID: 2, FollowingID: 4}, {FollowerID: 2, FollowingID: 6}, {FollowerID: 2, FollowingID: 3},
			{FollowerID: 3, FollowingID: 2}, {FollowerID: 3, FollowingID: 4}, {FollowerID: 3, FollowingID: 6},
			{FollowerID: 4, FollowingID: 2}, {FollowerID: 4, FollowingID: 3}, {FollowerID: 4, FollowingID: 5},
			{FollowerID: 6, FollowingID: 5}, {FollowerID: 6, FollowingID: 4}, {FollowerID: 6, FollowingID: 3},
		}
		if err := tx.Create(&follows).Error; err != nil {
			return err
		}

		likes := []models.Like{
			{UserID: 5, PostID: 8}, {UserID: 5, PostID: 6}, {UserID: 5, PostID: 10},
			{UserID: 2, PostID: 8}, {UserID: 2, PostID: 6}, {UserID: 2, PostID: 4},
			{UserID: 3, PostID: 8}, {UserID: 3, PostID: 15}, {UserID: 3, PostID: 4},
			{UserID: 4, PostID: 8}, {UserID: 4, PostID: 4}, {UserID: 4, PostID: 5},
			{UserID: 6, PostID: 8}, {UserID: 6, PostID: 13}, {UserID: 6, PostID: 3},
		}
		if err := tx.Create(&likes).Error; err != nil {
			return err
		}

		comments := []models.Comment{
			{AuthorID: 6, PostID: 1, Text: "ehem... i believe that would be me."},
			{AuthorID: 3, PostID: 8, Text: "this exact thought keeps me up a lot at night..."},
			{AuthorID: 2, PostID: 2, Text: "try 'ctrl' z"},
			{AuthorID: 3, PostID: 12, Text: "ha."},
			{AuthorID: 4, PostID: 11, Text: "literally no one cares."},
			{AuthorID: 5, PostID: 4, Text: "Welcome, Nolan!"},
			{AuthorID: 5, PostID: 6, Text: "i approve"},
			{AuthorID: 6, PostID: 4, Text: "Welcome!"},
			{AuthorID: 6, PostID: 3, Text: "validation, check."},
			{AuthorID: 2, PostID: 8, Text: "aliens."},
		}
		return tx.Create(&comments).Error
	})
}
