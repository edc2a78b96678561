package service

import "errors"

var (
	// ErrInvalidCredentials is returned on any login failure, whether the
	// account does not exist or the password does not match. Callers must not
	// be able to distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
