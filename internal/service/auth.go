package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/repositories"
)

// AuthService handles registration and login. Lockout state lives in an
// in-process registry keyed by a client-carried session id, so concurrent
// sessions throttle independently. The keying has two known limits: a client
// that presents a fresh session id on every attempt starts over with free
// attempts, and guards for abandoned sessions stay in the registry until the
// process restarts. Throttling hostile clients needs a layer keyed on
// username or source address in front of this one.
type AuthService struct {
	userRepo  repositories.UserRepository
	guards    *guardRegistry
	jwtSecret []byte
	jwtExpiry time.Duration

	// penaltyUnit and sleep exist so tests can observe lockout delays
	// without waiting through them.
	penaltyUnit time.Duration
	sleep       func(time.Duration)
}

// NewAuthService creates an AuthService. Lockout penalties are measured in
// seconds.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		guards:      newGuardRegistry(),
		jwtSecret:   []byte(jwtSecret),
		jwtExpiry:   jwtExpiry,
		penaltyUnit: time.Second,
		sleep:       time.Sleep,
	}
}

// Register validates the username and password policy, hashes the password
// and creates the user. Optional profile fields pass through unvalidated.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	logCtx := logrus.WithField("username", req.Username)

	if strings.TrimSpace(req.Username) == "" {
		return nil, &PolicyViolation{EmptyUsername: true}
	}

	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		logCtx.Warn("Registration rejected: username already taken")
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logCtx.WithError(err).Error("Database error during username lookup")
		return nil, ErrInternal
	}

	if err := checkPasswordPolicy(req.Username, req.Password); err != nil {
		logCtx.Warn("Registration rejected: password policy violation")
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, ErrInternal
	}

	user := &models.User{
		Username:     req.Username,
		Password:     hashed,
		FullName:     req.FullName,
		Email:        req.Email,
		ProfileImage: req.ProfileImage,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		// The unique index is the race-free authority; the lookup above is
		// only there for the friendly early answer.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logCtx.Warn("Registration rejected: username taken by concurrent writer")
			return nil, ErrDuplicateUsername
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, ErrInternal
	}

	logCtx.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login verifies the credentials for the given login session. A failed
// attempt returns ErrAuthFailed; from the fifth consecutive failure on the
// call blocks for an escalating penalty before returning. Success resets the
// session and returns the user with a signed JWT. The returned session id
// must be carried by the client across retries of the same login sequence.
func (s *AuthService) Login(sessionID, username, password string) (*models.User, string, string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	logCtx := logrus.WithFields(logrus.Fields{"username": username, "session": sessionID})

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil || !checkPassword(password, user.Password) {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			logCtx.WithError(err).Error("Database error during login")
			return nil, "", sessionID, ErrInternal
		}
		penalty := s.guards.fail(sessionID)
		if penalty > 0 {
			logCtx.WithField("penalty_units", penalty).Warn("Max login attempts exceeded, login suspended")
			s.sleep(time.Duration(penalty) * s.penaltyUnit)
		} else {
			logCtx.Warn("Login attempt failed")
		}
		return nil, "", sessionID, ErrAuthFailed
	}

	s.guards.succeed(sessionID)

	token, err := s.generateJWT(user)
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate token")
		return nil, "", sessionID, ErrInternal
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in")
	return user, token, sessionID, nil
}

// generateJWT generates a JWT token for a given user
func (s *AuthService) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
