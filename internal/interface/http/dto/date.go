package dto

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout 请求与响应中日期字段的格式
const DateLayout = "2006-01-02"

// ParseDate 解析yyyy-MM-dd（UTC）
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// FormatDate 零值返回空串
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// notInFuture 日期不能晚于今天
var notInFuture = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return errors.New("must be a date in yyyy-MM-dd format")
	}
	if t.After(time.Now().UTC()) {
		return errors.New("must not be in the future")
	}
	return nil
})
