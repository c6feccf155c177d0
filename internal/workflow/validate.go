package workflow

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrValidation marks failures caught before any network call.
var ErrValidation = errors.New("validation failed")

const (
	commentMinLength = 50
	commentMaxLength = 300
	ratingMin        = 1
	ratingMax        = 5
)

// IsValidPassword requires at least one letter and at least one digit.
func IsValidPassword(password string) bool {
	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !IsValidPassword(password) {
		return fmt.Errorf("%w: password must contain at least one letter and one digit", ErrValidation)
	}
	return nil
}

func validateComment(comment string, rating int) error {
	length := len([]rune(strings.TrimSpace(comment)))
	if length < commentMinLength || length > commentMaxLength {
		return fmt.Errorf("%w: comment must be %d to %d characters", ErrValidation, commentMinLength, commentMaxLength)
	}
	if rating < ratingMin || rating > ratingMax {
		return fmt.Errorf("%w: rating must be %d to %d", ErrValidation, ratingMin, ratingMax)
	}
	return nil
}
