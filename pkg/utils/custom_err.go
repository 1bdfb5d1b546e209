package utils

import "errors"

var (
	ErrCodeNotFound       = errors.New("access code not found")
	ErrCodeInvalid        = errors.New("invalid or inactive code")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrDatabaseError      = errors.New("database error")
)
