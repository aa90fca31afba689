package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"` // Exact, case-sensitive match
	Password     string    `json:"-"`                                    // Store bcrypt hash, ignore for JSON serialization
	FullName     string    `json:"full_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest defines the request body for registering a new user.
// Password policy (letters/digits/specials) is enforced by the auth service,
// not by validator tags, so the caller gets the per-requirement breakdown.
type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=1,max=50"`
	Password     string `json:"password" validate:"required"`
	FullName     string `json:"full_name,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	ProfileImage string `json:"profile_image,omitempty" validate:"omitempty,url"`
}

// LoginRequest defines the request body for logging in. SessionID carries the
// login-attempt session across retries so lockout escalation applies.
type LoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
