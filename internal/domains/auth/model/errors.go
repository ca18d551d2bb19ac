package model

import "errors"

const RoleAdmin = "admin"

var (
	ErrTokenRevoked = errors.New("token has been revoked")
	ErrMissingJTI   = errors.New("token has no jti")
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED" // 400
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"      // 401
	ErrCodeInternalError    ErrorCode = "SYS_INTERNAL_ERROR" // 500
)

// RevokedTokenKey is the cache key marking a jti as logged out.
func RevokedTokenKey(jti string) string {
	return "auth:revoked:" + jti
}
