package user

import (
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

var (
	ErrUserNotFound      = apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")
	ErrUserAlreadyExists = apperrors.New(apperrors.ErrCodeUserAlreadyExists, "User already exists")
)

func NotFoundError(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeUserNotFound, "User with id %d not exists", id)
}

func AlreadyExistsError(email, username string) error {
	return apperrors.Newf(apperrors.ErrCodeUserAlreadyExists, "User with email %s or username %s already exists", email, username)
}
