package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/auth"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
	"github.com/gpmendes7/bookstoremanager-course/internal/mocks"
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

func TestVerifier_LoadUserByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("返回哈希与ROLE_前缀权限", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByUsername", mock.Anything, "rodrigopeleias").Return(&user.User{
			ID:       1,
			Username: "rodrigopeleias",
			Password: "$2a$10$hash",
			Role:     user.RoleUser,
		}, nil)

		principal, err := auth.NewVerifier(repo).LoadUserByUsername(ctx, "rodrigopeleias")
		require.NoError(t, err)

		assert.Equal(t, uint(1), principal.UserID)
		assert.Equal(t, "rodrigopeleias", principal.Username)
		assert.Equal(t, "$2a$10$hash", principal.PasswordHash)
		assert.Equal(t, []string{"ROLE_USER"}, principal.Authorities)
		repo.AssertExpectations(t)
	})

	t.Run("管理员权限", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByUsername", mock.Anything, "admin").Return(&user.User{ID: 2, Username: "admin", Role: user.RoleAdmin}, nil)

		principal, err := auth.NewVerifier(repo).LoadUserByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, []string{"ROLE_ADMIN"}, principal.Authorities)
	})

	t.Run("登录名不存在返回认证层错误", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, user.ErrUserNotFound)

		principal, err := auth.NewVerifier(repo).LoadUserByUsername(ctx, "ghost")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, auth.ErrUsernameNotFound)
		assert.NotErrorIs(t, err, user.ErrUserNotFound)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("仓储错误原样返回", func(t *testing.T) {
		dbErr := apperrors.Wrap(errors.New("connection refused"), "Database error")
		repo := new(mocks.UserRepository)
		repo.On("FindByUsername", mock.Anything, "someone").Return(nil, dbErr)

		_, err := auth.NewVerifier(repo).LoadUserByUsername(ctx, "someone")
		assert.Same(t, dbErr, err)
	})
}
