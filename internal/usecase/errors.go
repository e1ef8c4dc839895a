package usecase

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrSelfMatch        = errors.New("cannot match a user with themselves")
	ErrMatchExists      = errors.New("match already exists")
	ErrStoreUnavailable = errors.New("profile store unavailable")
)
