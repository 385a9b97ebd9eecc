package account

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("email address is invalid")
	ErrWeakPassword       = errors.New("password must be between 8 and 128 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is deactivated")
	ErrPasswordHashing    = errors.New("failed to hash password")
)
