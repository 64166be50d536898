package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
	"github.com/gpmendes7/bookstoremanager-course/pkg/response"
)

type validatable interface {
	Validate() error
}

// bindJSON 绑定并校验请求体，失败时已写入400响应
// 1. binding tag（必填、长度、格式）
// 2. 实现了Validate的DTO再做一次业务格式校验（枚举、日期）
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "Invalid parameters: "+err.Error())
		return false
	}
	if v, ok := req.(validatable); ok {
		if err := v.Validate(); err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "Invalid parameters: "+err.Error())
			return false
		}
	}
	return true
}

// pathID 解析路径参数:id
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "Invalid id: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}
