package store

import (
	"strings"

	"chirp/apperror"
)

// ValidateRegistration checks registration input. Password confirmation is
// the caller's concern; only the fields that get persisted are checked here.
func ValidateRegistration(username, email, password string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return apperror.NewValidation("You have to enter a username")
	case email == "" || !strings.Contains(email, "@"):
		return apperror.NewValidation("You have to enter a valid email address")
	case password == "":
		return apperror.NewValidation("You have to enter a password")
	}
	return nil
}

// ValidateMessageText rejects empty or whitespace-only message text.
func ValidateMessageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperror.NewValidation("You have to enter a message")
	}
	return nil
}
