package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 1. Code用于客户端判断错误类型
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，只写日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较
// 带参数的错误（如"Author with id 7 not found"）与预定义的哨兵错误码相同即视为同一类错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus 错误码 → HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code == ErrCodeForbidden:
		return http.StatusForbidden
	case e.Code >= 40100 && e.Code < 40200:
		return http.StatusUnauthorized
	case e.Code >= 40400 && e.Code < 40500:
		return http.StatusNotFound
	case e.Code >= 40000 && e.Code < 50000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如数据库错误、网络错误），隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeRedisError    = 50002
	ErrCodeBrokerError   = 50003

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized     = 40100
	ErrCodeInvalidToken     = 40101
	ErrCodeTokenExpired     = 40102
	ErrCodeInvalidPassword  = 40103
	ErrCodeForbidden        = 40104
	ErrCodeUsernameNotFound = 40105

	// 资源错误（40400-40499）
	ErrCodeNotFound          = 40400
	ErrCodeUserNotFound      = 40401
	ErrCodeAuthorNotFound    = 40404
	ErrCodePublisherNotFound = 40405

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError          = 40000
	ErrCodeDuplicateEntry         = 40009
	ErrCodeAuthorAlreadyExists    = 40010
	ErrCodePublisherAlreadyExists = 40011
	ErrCodeUserAlreadyExists      = 40012

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900
	ErrCodeBindError     = 40901
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(ErrCodeInternal, "Internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error")
	ErrRedisError    = New(ErrCodeRedisError, "Cache service error")

	ErrUnauthorized    = New(ErrCodeUnauthorized, "Authentication required")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "Invalid token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token expired")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "Invalid username or password")
	ErrForbidden       = New(ErrCodeForbidden, "Access denied")

	ErrNotFound       = New(ErrCodeNotFound, "Resource not found")
	ErrDuplicateEntry = New(ErrCodeDuplicateEntry, "Record already exists")

	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid parameters")
	ErrBindError     = New(ErrCodeBindError, "Malformed request body")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}

// IsNotFound 判断是否为资源不存在错误（404xx）
func IsNotFound(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code >= ErrCodeNotFound && appErr.Code < ErrCodeNotFound+100
	}
	return false
}

// HasCode 判断错误链中是否包含指定错误码
func HasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
