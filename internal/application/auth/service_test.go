package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/gpmendes7/bookstoremanager-course/internal/domain/auth"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
	"github.com/gpmendes7/bookstoremanager-course/internal/mocks"
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
	"github.com/gpmendes7/bookstoremanager-course/pkg/jwt"
)

type fixture struct {
	svc      *Service
	repo     *mocks.UserRepository
	sessions *mocks.SessionStore
	jwt      *jwt.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	encoder := user.NewBcryptEncoder(bcrypt.MinCost)
	hash, err := encoder.Encode("123456")
	require.NoError(t, err)

	repo := new(mocks.UserRepository)
	repo.On("FindByUsername", mock.Anything, "rodrigopeleias").Return(&user.User{
		ID:       1,
		Username: "rodrigopeleias",
		Password: hash,
		Role:     user.RoleAdmin,
	}, nil).Maybe()
	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, user.ErrUserNotFound).Maybe()

	sessions := new(mocks.SessionStore)
	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)

	return &fixture{
		svc:      NewService(domainauth.NewVerifier(repo), encoder, manager, sessions),
		repo:     repo,
		sessions: sessions,
		jwt:      manager,
	}
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("正确密码签发带权限的Token", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.On("SaveSession", mock.Anything, uint(1), mock.Anything, 24*time.Hour).Return(nil)

		resp, err := f.svc.Authenticate(ctx, AuthenticationRequest{Username: "rodrigopeleias", Password: "123456"})
		require.NoError(t, err)
		saved := f.sessions.Calls[0].Arguments.Get(2).(map[string]interface{})
		assert.Equal(t, resp.RefreshToken, saved["refresh_token"])
		assert.NotEmpty(t, resp.JwtToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, int64(3600), resp.ExpiresIn)

		claims, err := f.jwt.ParseAccessToken(resp.JwtToken)
		require.NoError(t, err)
		assert.Equal(t, "rodrigopeleias", claims.Username)
		assert.True(t, claims.HasAuthority("ROLE_ADMIN"))
		f.sessions.AssertExpectations(t)
	})

	t.Run("会话保存失败不影响登录", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.On("SaveSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		resp, err := f.svc.Authenticate(ctx, AuthenticationRequest{Username: "rodrigopeleias", Password: "123456"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.JwtToken)
	})

	t.Run("密码错误", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Authenticate(ctx, AuthenticationRequest{Username: "rodrigopeleias", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
		f.sessions.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("用户名不存在", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Authenticate(ctx, AuthenticationRequest{Username: "ghost", Password: "123456"})
		assert.ErrorIs(t, err, domainauth.ErrUsernameNotFound)
	})
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("按当前角色签发新的Access Token", func(t *testing.T) {
		f := newFixture(t)
		// Refresh Token签发时是普通用户，之后被提升为管理员
		pair, err := f.jwt.GenerateToken(1, "rodrigopeleias", []string{"ROLE_USER"})
		require.NoError(t, err)
		f.sessions.On("GetSession", mock.Anything, uint(1)).Return(map[string]string{"refresh_token": pair.RefreshToken}, nil)

		resp, err := f.svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		claims, err := f.jwt.ParseAccessToken(resp.JwtToken)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, []string{"ROLE_ADMIN"}, claims.Authorities)
		assert.Equal(t, pair.RefreshToken, resp.RefreshToken)
	})

	t.Run("Access Token不能用于刷新", func(t *testing.T) {
		f := newFixture(t)
		pair, err := f.jwt.GenerateToken(1, "rodrigopeleias", nil)
		require.NoError(t, err)

		_, err = f.svc.Refresh(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		f.sessions.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	})

	t.Run("登出后会话不存在", func(t *testing.T) {
		f := newFixture(t)
		pair, err := f.jwt.GenerateToken(1, "rodrigopeleias", nil)
		require.NoError(t, err)
		f.sessions.On("GetSession", mock.Anything, uint(1)).Return(nil, apperrors.ErrUnauthorized)

		_, err = f.svc.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		f.repo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})

	t.Run("会话属于其他Refresh Token", func(t *testing.T) {
		f := newFixture(t)
		pair, err := f.jwt.GenerateToken(1, "rodrigopeleias", nil)
		require.NoError(t, err)
		f.sessions.On("GetSession", mock.Anything, uint(1)).Return(map[string]string{"refresh_token": "newer-token"}, nil)

		_, err = f.svc.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("用户已删除", func(t *testing.T) {
		f := newFixture(t)
		pair, err := f.jwt.GenerateToken(5, "ghost", []string{"ROLE_ADMIN"})
		require.NoError(t, err)
		f.sessions.On("GetSession", mock.Anything, uint(5)).Return(map[string]string{"refresh_token": pair.RefreshToken}, nil)

		_, err = f.svc.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, domainauth.ErrUsernameNotFound)
	})

	t.Run("用户名已属于其他用户", func(t *testing.T) {
		f := newFixture(t)
		pair, err := f.jwt.GenerateToken(9, "rodrigopeleias", nil)
		require.NoError(t, err)
		f.sessions.On("GetSession", mock.Anything, uint(9)).Return(map[string]string{"refresh_token": pair.RefreshToken}, nil)

		_, err = f.svc.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("未配置会话存储", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(domainauth.NewVerifier(f.repo), nil, f.jwt, nil)
		pair, err := f.jwt.GenerateToken(1, "rodrigopeleias", nil)
		require.NoError(t, err)

		resp, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.JwtToken)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("删除会话并拉黑Access Token", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.On("DeleteSession", mock.Anything, uint(1)).Return(nil)
		f.sessions.On("AddToBlacklist", mock.Anything, "access-token", time.Hour).Return(nil)

		require.NoError(t, f.svc.Logout(ctx, 1, "access-token"))
		f.sessions.AssertExpectations(t)
	})

	t.Run("删除会话失败", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.On("DeleteSession", mock.Anything, uint(1)).Return(apperrors.ErrRedisError)

		assert.ErrorIs(t, f.svc.Logout(ctx, 1, "access-token"), apperrors.ErrRedisError)
		f.sessions.AssertNotCalled(t, "AddToBlacklist", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("未配置会话存储", func(t *testing.T) {
		svc := NewService(nil, nil, jwt.NewManager("s", time.Hour, time.Hour), nil)
		assert.NoError(t, svc.Logout(ctx, 1, "token"))
	})
}
