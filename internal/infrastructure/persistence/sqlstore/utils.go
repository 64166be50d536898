package sqlstore

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

// isDuplicateError 判断是否为唯一索引冲突
// TranslateError未覆盖时按各数据库的错误信息兜底：
//   - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
//   - PostgreSQL 23505: duplicate key value violates unique constraint
//   - SQLite: UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// dbError 包装数据库错误，隐藏SQL细节
func dbError(err error, message string) error {
	appErr := apperrors.Wrap(err, message)
	appErr.Code = apperrors.ErrCodeDatabaseError
	return appErr
}
