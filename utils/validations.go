package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	EmailMaxLength    = 50
	PasswordMinLength = 8
	PasswordMaxLength = 50
)

// BannedWords are rejected anywhere inside a registration email.
var BannedWords = []string{
	"admin",
	"root",
	"system",
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail returns a human-readable error message, or "" when valid.
func ValidateEmail(email string) string {
	if email == "" {
		return "email is required"
	}
	if len(email) > EmailMaxLength {
		return fmt.Sprintf("email cannot be longer than %d characters", EmailMaxLength)
	}
	if strings.Contains(email, " ") {
		return "email cannot contain spaces"
	}
	if !emailRegexp.MatchString(email) {
		return "invalid email"
	}
	lower := strings.ToLower(email)
	for _, word := range BannedWords {
		if strings.Contains(lower, word) {
			return "email not allowed"
		}
	}
	return ""
}

// ValidatePassword returns a human-readable error message, or "" when valid.
func ValidatePassword(password string) string {
	if password == "" {
		return "password is required"
	}
	if len(password) < PasswordMinLength {
		return fmt.Sprintf("password must be at least %d characters", PasswordMinLength)
	}
	if len(password) > PasswordMaxLength {
		return fmt.Sprintf("password cannot be longer than %d characters", PasswordMaxLength)
	}
	if strings.Contains(password, " ") {
		return "password cannot contain spaces"
	}
	return ""
}
