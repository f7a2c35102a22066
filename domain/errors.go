package domain

import "errors"

// Verification errors
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrOTPInvalidOrExpired   = errors.New("invalid or expired OTP")
	ErrCredentialRequired    = errors.New("either password or OTP code is required")
	ErrAccountResolution     = errors.New("account could not be resolved")
	ErrNoRolesAssigned       = errors.New("no roles assigned to account")
	ErrInvalidRoleID         = errors.New("role is not assigned to account")
	ErrRoleSelectionRequired = errors.New("role selection required")
)

// Lookup errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
