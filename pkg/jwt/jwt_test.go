package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(1, "rodrigopeleias", []string{"ROLE_USER"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	t.Run("解析Access Token", func(t *testing.T) {
		claims, err := m.ParseAccessToken(pair.AccessToken)
		require.NoError(t, err)

		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, "rodrigopeleias", claims.Username)
		assert.True(t, claims.HasAuthority("ROLE_USER"))
		assert.False(t, claims.HasAuthority("ROLE_ADMIN"))
		assert.Equal(t, "1", claims.Subject)
	})

	t.Run("Refresh Token不能当作Access Token", func(t *testing.T) {
		_, err := m.ParseAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Access Token不能用于刷新", func(t *testing.T) {
		_, err := m.ParseRefreshToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("解析Refresh Token", func(t *testing.T) {
		claims, err := m.ParseRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("单独签发Access Token使用传入的权限", func(t *testing.T) {
		token, err := m.GenerateAccessToken(1, "rodrigopeleias", []string{"ROLE_ADMIN"})
		require.NoError(t, err)

		claims, err := m.ParseAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, []string{"ROLE_ADMIN"}, claims.Authorities)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})
}

func TestManager_ParseToken_Invalid(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("签名不匹配", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour, time.Hour)
		pair, err := other.GenerateToken(1, "someone", nil)
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("过期Token", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute, time.Hour)
		pair, err := expired.GenerateToken(1, "someone", nil)
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := m.ParseToken("not-a-jwt")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
