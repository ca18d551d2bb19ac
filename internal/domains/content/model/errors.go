package model

import "errors"

var (
	ErrItemNotFound      = errors.New("content item not found")
	ErrUnknownCategory   = errors.New("unknown content category")
	ErrInvalidVisibility = errors.New("visibility must be one of all, visible, hidden")
	ErrInvalidSeed       = errors.New("invalid seed data")
)

type ErrorCode string

const (
	ErrCodeItemNotFound     ErrorCode = "CONTENT_NOT_FOUND"     // 404
	ErrCodeUnknownCategory  ErrorCode = "CATEGORY_NOT_FOUND"    // 404
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"     // 400
	ErrCodeInternalError    ErrorCode = "SYS_INTERNAL_ERROR"    // 500
	ErrCodeExportFailed     ErrorCode = "CONTENT_EXPORT_FAILED" // 500
)
