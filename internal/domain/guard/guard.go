// Package guard 写操作前的存在性与唯一性校验
//
// Record Service的create/update/delete都以这两个校验开始：
//   - EnsureUnique: 按自然键查找，存在冲突记录（排除自身ID）则返回AlreadyExists
//   - MustExist: 按主键或登录名查找，不存在则返回NotFound
//
// 仓储约定：查不到记录时返回404xx错误码的AppError，其他错误原样向上传递。
package guard

import (
	"context"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

// Identified 有主键的领域实体
type Identified interface {
	Identity() uint
}

// EnsureUnique 唯一性校验
// exceptID为0表示创建；更新时传入记录自身ID，自身不算冲突
func EnsureUnique[T Identified](ctx context.Context, lookup func(ctx context.Context) ([]T, error), exceptID uint, conflict func() error) error {
	found, err := lookup(ctx)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}

	for _, record := range found {
		if exceptID == 0 || record.Identity() != exceptID {
			return conflict()
		}
	}
	return nil
}

// Single 把单条查找适配为多条查找（NotFound视为无匹配）
func Single[T Identified](find func(ctx context.Context) (T, error)) func(ctx context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		record, err := find(ctx)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, nil
			}
			return nil, err
		}
		return []T{record}, nil
	}
}

// MustExist 存在性校验
// 仓储返回的NotFound替换为notFound()构造的错误（携带查询键）
func MustExist[T any](ctx context.Context, find func(ctx context.Context) (T, error), notFound func() error) (T, error) {
	record, err := find(ctx)
	if err != nil {
		var zero T
		if apperrors.IsNotFound(err) {
			return zero, notFound()
		}
		return zero, err
	}
	return record, nil
}
