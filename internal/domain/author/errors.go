package author

import (
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

// 作者领域错误
var (
	ErrAuthorNotFound      = apperrors.New(apperrors.ErrCodeAuthorNotFound, "Author not found")
	ErrAuthorAlreadyExists = apperrors.New(apperrors.ErrCodeAuthorAlreadyExists, "Author already exists")
)

// NotFoundError 按ID查找失败
func NotFoundError(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeAuthorNotFound, "Author with id %d not exists", id)
}

// AlreadyExistsError 名称冲突
func AlreadyExistsError(name string) error {
	return apperrors.Newf(apperrors.ErrCodeAuthorAlreadyExists, "Author with name %s already exists", name)
}
