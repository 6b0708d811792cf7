package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes, everything else is treated as an internal error
var (
	ErrNotFound       = errors.New("record not found")
	ErrSelfFollow     = errors.New("users can't follow themselves")
	ErrForbidden      = errors.New("operation not allowed for this user")
	ErrBadCredentials = errors.New("invalid email/password combination")
	ErrEmailTaken     = errors.New("email is already registered")
	ErrHandleTaken    = errors.New("handle is already taken")

	ErrContentEmpty   = errors.New("squawk content can't be empty")
	ErrContentTooLong = errors.New("squawk content can't exceed 140 characters")

	ErrTokenInvalid = errors.New("reset token is invalid")
	ErrTokenExpired = errors.New("reset token has expired")
)
