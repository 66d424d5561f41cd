package service

import "errors"

var (
	ErrInternal     = errors.New("internal server error")
	ErrUserNotFound = errors.New("user not found")
)
