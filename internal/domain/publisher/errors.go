package publisher

import (
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

var (
	ErrPublisherNotFound      = apperrors.New(apperrors.ErrCodePublisherNotFound, "Publisher not found")
	ErrPublisherAlreadyExists = apperrors.New(apperrors.ErrCodePublisherAlreadyExists, "Publisher already exists")
)

func NotFoundError(id uint) error {
	return apperrors.Newf(apperrors.ErrCodePublisherNotFound, "Publisher with id %d not exists", id)
}

func AlreadyExistsError(name, code string) error {
	return apperrors.Newf(apperrors.ErrCodePublisherAlreadyExists, "Publisher with name %s or code %s already exists", name, code)
}
