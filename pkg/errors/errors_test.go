package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Is(t *testing.T) {
	t.Run("相同错误码视为同一错误", func(t *testing.T) {
		err := Newf(ErrCodeAuthorNotFound, "Author with id %d not found", 7)
		sentinel := New(ErrCodeAuthorNotFound, "Author not found")

		assert.True(t, errors.Is(err, sentinel))
		assert.False(t, errors.Is(err, ErrNotFound))
	})

	t.Run("包装后仍可识别", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", ErrInvalidToken)

		assert.True(t, errors.Is(err, ErrInvalidToken))
		assert.True(t, HasCode(err, ErrCodeInvalidToken))
	})

	t.Run("内部错误可通过Unwrap取出", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap(cause, "Database error")

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"资源不存在", New(ErrCodeAuthorNotFound, ""), http.StatusNotFound},
		{"重复记录", New(ErrCodeUserAlreadyExists, ""), http.StatusBadRequest},
		{"参数错误", ErrInvalidParams, http.StatusBadRequest},
		{"未登录", ErrUnauthorized, http.StatusUnauthorized},
		{"用户名不存在", New(ErrCodeUsernameNotFound, ""), http.StatusUnauthorized},
		{"无权限", ErrForbidden, http.StatusForbidden},
		{"内部错误", ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodePublisherNotFound, "")))
	assert.True(t, IsNotFound(fmt.Errorf("repo: %w", ErrNotFound)))
	assert.False(t, IsNotFound(New(ErrCodeUsernameNotFound, "")))
	assert.False(t, IsNotFound(errors.New("record not found")))
}

func TestGetAppError(t *testing.T) {
	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		appErr := GetAppError(errors.New("boom"))

		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.True(t, IsAppError(appErr))
	})

	t.Run("AppError原样返回", func(t *testing.T) {
		appErr := GetAppError(ErrForbidden)

		assert.Same(t, ErrForbidden, appErr)
	})
}
