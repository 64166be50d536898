package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

func TestRole(t *testing.T) {
	assert.Equal(t, "user", RoleUser.Description())
	assert.Equal(t, "ROLE_USER", RoleUser.Authority())
	assert.Equal(t, "ROLE_ADMIN", RoleAdmin.Authority())
	assert.False(t, Role("GUEST").IsValid())
}

func TestGender(t *testing.T) {
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.False(t, Gender("male").IsValid())
}

func TestBcryptEncoder(t *testing.T) {
	encoder := NewBcryptEncoder(bcrypt.MinCost)

	hashed, err := encoder.Encode("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hashed)

	t.Run("密码正确", func(t *testing.T) {
		assert.NoError(t, encoder.Matches(hashed, "123456"))
	})

	t.Run("密码错误", func(t *testing.T) {
		assert.ErrorIs(t, encoder.Matches(hashed, "654321"), apperrors.ErrInvalidPassword)
	})

	t.Run("相同密码两次哈希不同", func(t *testing.T) {
		again, err := encoder.Encode("123456")
		require.NoError(t, err)
		assert.NotEqual(t, hashed, again)
	})

	t.Run("非法cost回退默认值", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptEncoder(100).cost)
	})
}
