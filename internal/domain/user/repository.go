package user

import (
	"context"
)

// Repository 用户仓储接口
// 1. 接口定义在domain层，实现在infrastructure/persistence
// 2. 查不到记录时返回ErrUserNotFound
type Repository interface {
	// Save 新增或全量覆盖
	Save(ctx context.Context, user *User) error

	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmailOrUsername 返回email或username匹配的所有用户
	FindByEmailOrUsername(ctx context.Context, email, username string) ([]*User, error)

	// FindByUsername 登录名查找（认证使用）
	FindByUsername(ctx context.Context, username string) (*User, error)

	FindAll(ctx context.Context) ([]*User, error)

	DeleteByID(ctx context.Context, id uint) error
}
