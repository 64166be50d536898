package handler

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/gpmendes7/bookstoremanager-course/internal/application/auth"
	appuser "github.com/gpmendes7/bookstoremanager-course/internal/application/user"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/dto"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/middleware"
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
	"github.com/gpmendes7/bookstoremanager-course/pkg/response"
)

// UserHandler 用户HTTP处理器
// 1. 用户的增删改查
// 2. 登录、刷新Token、登出
type UserHandler struct {
	users *appuser.Service
	auth  *appauth.Service
}

// NewUserHandler 创建用户处理器
func NewUserHandler(users *appuser.Service, auth *appauth.Service) *UserHandler {
	return &UserHandler{
		users: users,
		auth:  auth,
	}
}

// Create 创建用户
// 匿名请求只能创建USER角色；创建ADMIN需要管理员Token
// @Summary      创建用户
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.UserRequest true "用户信息"
// @Success      201 {object} response.Response{data=dto.MessageResponse}
// @Failure      400 {object} response.Response "参数错误或邮箱/用户名已存在"
// @Failure      403 {object} response.Response "无权创建管理员"
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	if user.Role(req.Role) == user.RoleAdmin && !middleware.HasAuthority(c, user.RoleAdmin.Authority()) {
		response.Error(c, apperrors.ErrForbidden)
		return
	}

	msg, err := h.users.Create(c.Request.Context(), req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MessageResponse{Message: msg.Message})
}

// FindByID 查询用户
// @Summary      查询用户
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) FindByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(*found))
}

// FindAll 用户列表
// @Summary      用户列表
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.UserResponse}
// @Router       /api/v1/users [get]
func (h *UserHandler) FindAll(c *gin.Context) {
	all, err := h.users.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserListResponse(all))
}

// Update 更新用户
// 普通用户只能修改自己，且不能把自己提升为ADMIN
// @Summary      更新用户
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Param        request body dto.UserRequest true "用户信息"
// @Success      200 {object} response.Response{data=dto.MessageResponse}
// @Failure      403 {object} response.Response "无权修改"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	isAdmin := middleware.HasAuthority(c, user.RoleAdmin.Authority())
	if !isAdmin && (middleware.GetUserID(c) != id || user.Role(req.Role) == user.RoleAdmin) {
		response.Error(c, apperrors.ErrForbidden)
		return
	}

	msg, err := h.users.Update(c.Request.Context(), id, req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.MessageResponse{Message: msg.Message})
}

// Delete 删除用户
// @Summary      删除用户
// @Tags         用户
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Success      204
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Authenticate 用户登录
// @Summary      用户登录
// @Description  校验用户名密码，返回JWT Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.AuthenticationRequest true "登录信息"
// @Success      200 {object} response.Response{data=appauth.AuthenticationResponse}
// @Failure      401 {object} response.Response "用户名或密码错误"
// @Router       /api/v1/users/authenticate [post]
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req dto.AuthenticationRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.auth.Authenticate(c.Request.Context(), appauth.AuthenticationRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Refresh 刷新Access Token
// @Summary      刷新Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshRequest true "Refresh Token"
// @Success      200 {object} response.Response{data=appauth.AuthenticationResponse}
// @Failure      401 {object} response.Response "Token无效或已过期"
// @Router       /api/v1/users/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Logout 登出，当前Access Token立即失效
// @Summary      登出
// @Tags         用户
// @Security     BearerAuth
// @Success      204
// @Router       /api/v1/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.GetUserID(c), middleware.GetToken(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
