package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/gpmendes7/bookstoremanager-course/internal/application/author"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/dto"
	"github.com/gpmendes7/bookstoremanager-course/pkg/response"
)

// AuthorHandler 作者HTTP处理器
// Handler只负责解析请求、调用应用层、返回响应
type AuthorHandler struct {
	service *appauthor.Service
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(service *appauthor.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=dto.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误或名称已存在"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.AuthorRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewAuthorResponse(*created))
}

// FindByID 查询作者
// @Summary      查询作者
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) FindByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(*found))
}

// FindAll 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) FindAll(c *gin.Context) {
	all, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorListResponse(all))
}

// Update 更新作者
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AuthorRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(*updated))
}

// Delete 删除作者
// @Summary      删除作者
// @Tags         作者
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      204
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
