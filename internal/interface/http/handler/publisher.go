package handler

import (
	"github.com/gin-gonic/gin"

	apppublisher "github.com/gpmendes7/bookstoremanager-course/internal/application/publisher"
	"github.com/gpmendes7/bookstoremanager-course/internal/interface/http/dto"
	"github.com/gpmendes7/bookstoremanager-course/pkg/response"
)

// PublisherHandler 出版社HTTP处理器
type PublisherHandler struct {
	service *apppublisher.Service
}

func NewPublisherHandler(service *apppublisher.Service) *PublisherHandler {
	return &PublisherHandler{service: service}
}

// Create 创建出版社
// @Summary      创建出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PublisherRequest true "出版社信息"
// @Success      201 {object} response.Response{data=dto.PublisherResponse}
// @Failure      400 {object} response.Response "参数错误或名称/编码已存在"
// @Router       /api/v1/publishers [post]
func (h *PublisherHandler) Create(c *gin.Context) {
	var req dto.PublisherRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewPublisherResponse(*created))
}

// FindByID 查询出版社
// @Summary      查询出版社
// @Tags         出版社
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "出版社ID"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id} [get]
func (h *PublisherHandler) FindByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewPublisherResponse(*found))
}

// FindAll 出版社列表
// @Summary      出版社列表
// @Tags         出版社
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.PublisherResponse}
// @Router       /api/v1/publishers [get]
func (h *PublisherHandler) FindAll(c *gin.Context) {
	all, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewPublisherListResponse(all))
}

// Update 更新出版社
// @Summary      更新出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "出版社ID"
// @Param        request body dto.PublisherRequest true "出版社信息"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Router       /api/v1/publishers/{id} [put]
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.PublisherRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewPublisherResponse(*updated))
}

// Delete 删除出版社
// @Summary      删除出版社
// @Tags         出版社
// @Security     BearerAuth
// @Param        id path int true "出版社ID"
// @Success      204
// @Router       /api/v1/publishers/{id} [delete]
func (h *PublisherHandler) Delete(c *gin.Context) {
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
