package service

import "errors"

// Domain errors surfaced to callers. All are recoverable by retrying with
// corrected input; repositories.ErrStoreNotInitialized is the only fatal one.
var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrPolicyViolation   = errors.New("password does not meet policy requirements")
	ErrAuthFailed        = errors.New("incorrect login information")
	ErrSelfFollow        = errors.New("cannot follow yourself")
	ErrUnknownUser       = errors.New("user not found")
	ErrAlreadyFollowing  = errors.New("already following this user")
	ErrNotFollowing      = errors.New("not following this user")
	ErrUnknownPost       = errors.New("post not found")
	ErrEmptyComment      = errors.New("comment text cannot be empty")
	ErrEmptyPost         = errors.New("post content cannot be empty")
	ErrInternal          = errors.New("internal server error")
)

// PolicyViolation reports which registration sub-requirements failed so the
// caller can prompt for a corrected username or password.
type PolicyViolation struct {
	EmptyUsername  bool `json:"empty_username,omitempty"`
	SameAsUsername bool `json:"same_as_username,omitempty"`
	Letters        int  `json:"letters"`
	Digits         int  `json:"digits"`
	Specials       int  `json:"specials"`
}

func (v *PolicyViolation) Error() string {
	switch {
	case v.EmptyUsername:
		return "username cannot be empty"
	case v.SameAsUsername:
		return "password cannot be the same as the username"
	default:
		return "password must contain at least three letters, two numbers, and a special character"
	}
}

// Unwrap lets callers match with errors.Is(err, ErrPolicyViolation).
func (v *PolicyViolation) Unwrap() error { return ErrPolicyViolation }
