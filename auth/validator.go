// Package auth validates credential input shapes. Password storage and
// comparison happen verbatim in the session service; nothing here
// hashes or hides anything.
package auth

import (
	"strings"

	"chatsphere/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CredentialsRequest struct {
	Username string `validate:"required,max=32"`
	Password string `validate:"required,max=72"`
}

// ValidateCredentials checks structural rules before any account is
// touched. Whitespace-only usernames are rejected the same way blank
// ones are.
func ValidateCredentials(req CredentialsRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Username) == "" {
		return errors.ErrValidationFailed
	}
	return nil
}
