package admin

import (
	"github.com/storelane/storelane/internal/http/response"
	"github.com/storelane/storelane/internal/service"

	"github.com/gin-gonic/gin"
)

// ListPromotions 活动列表
func (h *Handler) ListPromotions(c *gin.Context) {
	isActive, page, pageSize := parseListQuery(c)
	promotions, total, err := h.promotionAdmin.List(isActive, page, pageSize)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.SuccessWithPage(c, promotions, response.BuildPagination(page, pageSize, total))
}

// GetPromotion 活动详情
func (h *Handler) GetPromotion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	promotion, err := h.promotionAdmin.GetByID(id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, promotion)
}

// CreatePromotion 创建活动
func (h *Handler) CreatePromotion(c *gin.Context) {
	var input service.PromotionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	promotion, err := h.promotionAdmin.Create(input)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, promotion)
}

// UpdatePromotion 更新活动
func (h *Handler) UpdatePromotion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var input service.PromotionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	promotion, err := h.promotionAdmin.Update(id, input)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, promotion)
}

// DeletePromotion 删除活动
func (h *Handler) DeletePromotion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.promotionAdmin.Delete(id); err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, nil)
}
