package service

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// specialChars is the fixed set of characters that count toward the
// special-character requirement.
const specialChars = "[@_!$%^&*()<>?/\\|}{~:]#+-=,.`"

// charCategory classifies a password character.
type charCategory int

const (
	categoryLetter charCategory = iota
	categoryDigit
	categorySpecial
	categoryOther
)

// classifyChar places a character into exactly one category. Characters
// outside the three counted categories neither help nor hurt the policy.
func classifyChar(c rune) charCategory {
	switch {
	case unicode.IsLetter(c):
		return categoryLetter
	case unicode.IsDigit(c):
		return categoryDigit
	case strings.ContainsRune(specialChars, c):
		return categorySpecial
	default:
		return categoryOther
	}
}

// checkPasswordPolicy validates a candidate password against the
// registration policy: not equal to the username, at least three letters,
// two digits, and one special character. Returns a *PolicyViolation on
// rejection.
func checkPasswordPolicy(username, password string) error {
	if password == username {
		return &PolicyViolation{SameAsUsername: true}
	}

	var letters, digits, specials int
	for _, c := range password {
		switch classifyChar(c) {
		case categoryLetter:
			letters++
		case categoryDigit:
			digits++
		case categorySpecial:
			specials++
		}
	}

	if letters >= 3 && digits >= 2 && specials >= 1 {
		return nil
	}
	return &PolicyViolation{Letters: letters, Digits: digits, Specials: specials}
}

// hashPassword hashes the plaintext with bcrypt. The plaintext never reaches
// the store or the logs.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

// checkPassword verifies the plaintext against the stored hash
func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
