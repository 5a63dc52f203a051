package user

import "storefront-be/internal/apperr"

var (
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrEmailExists        = apperr.InvalidInput("user already exists")
	ErrInvalidCredentials = apperr.Unauthorized("invalid credentials")
	ErrAccountDeactivated = apperr.Forbidden("account is deactivated")
)
