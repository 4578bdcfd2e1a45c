package admin

import (
	"github.com/storelane/storelane/internal/http/response"
	"github.com/storelane/storelane/internal/service"

	"github.com/gin-gonic/gin"
)

// ListDeals 促销价规则列表
func (h *Handler) ListDeals(c *gin.Context) {
	isActive, page, pageSize := parseListQuery(c)
	deals, total, err := h.dealAdmin.List(isActive, page, pageSize)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.SuccessWithPage(c, deals, response.BuildPagination(page, pageSize, total))
}

// GetDeal 促销价规则详情
func (h *Handler) GetDeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	deal, err := h.dealAdmin.GetByID(id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, deal)
}

// CreateDeal 创建促销价规则
func (h *Handler) CreateDeal(c *gin.Context) {
	var input service.DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	deal, err := h.dealAdmin.Create(input)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, deal)
}

// UpdateDeal 更新促销价规则
func (h *Handler) UpdateDeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var input service.DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	deal, err := h.dealAdmin.Update(id, input)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, deal)
}

// DeleteDeal 删除促销价规则
func (h *Handler) DeleteDeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.dealAdmin.Delete(id); err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, nil)
}
