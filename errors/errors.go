package errors

import "fmt"

var (
	ErrUsernameTaken      = fmt.Errorf("username already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrValidationFailed   = fmt.Errorf("validation failed")
	ErrDanglingReference  = fmt.Errorf("reference does not resolve to an existing entity")
	ErrNotAuthenticated   = fmt.Errorf("no authenticated user")
	ErrNoChannelSelected  = fmt.Errorf("no channel selected")
)
