// Package auth 凭证校验
//
// Verifier按登录名加载用户，向认证层暴露密码哈希与权限声明；
// 密码比对与Token签发由application/auth完成。
package auth

import (
	"context"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/guard"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

// ErrUsernameNotFound 认证层自己的"用户不存在"（与user.ErrUserNotFound错误码不同）
var ErrUsernameNotFound = apperrors.New(apperrors.ErrCodeUsernameNotFound, "Username not found")

// UsernameNotFoundError 携带登录名
func UsernameNotFoundError(username string) error {
	return apperrors.Newf(apperrors.ErrCodeUsernameNotFound, "Username %s not found", username)
}

// Principal 认证主体
type Principal struct {
	UserID       uint
	Username     string
	PasswordHash string
	Authorities  []string
}

// Verifier 凭证校验器
type Verifier struct {
	users user.Repository
}

// NewVerifier 创建凭证校验器
func NewVerifier(users user.Repository) *Verifier {
	return &Verifier{users: users}
}

// LoadUserByUsername 按登录名加载认证主体
// 权限声明只有一项："ROLE_" + 大写角色描述
func (v *Verifier) LoadUserByUsername(ctx context.Context, username string) (*Principal, error) {
	found, err := guard.MustExist(ctx,
		func(ctx context.Context) (*user.User, error) {
			return v.users.FindByUsername(ctx, username)
		},
		func() error { return UsernameNotFoundError(username) },
	)
	if err != nil {
		return nil, err
	}

	return &Principal{
		UserID:       found.ID,
		Username:     found.Username,
		PasswordHash: found.Password,
		Authorities:  []string{found.Role.Authority()},
	}, nil
}
