package admin

import (
	"github.com/storelane/storelane/internal/http/response"
	"github.com/storelane/storelane/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCoupons 优惠券列表
func (h *Handler) ListCoupons(c *gin.Context) {
	isActive, page, pageSize := parseListQuery(c)
	coupons, total, err := h.couponAdmin.List(c.Query("code"), isActive, page, pageSize)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.SuccessWithPage(c, coupons, response.BuildPagination(page, pageSize, total))
}

// GetCoupon 优惠券详情
func (h *Handler) GetCoupon(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	coupon, err := h.couponAdmin.GetByID(id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, coupon)
}

// CreateCoupon 创建优惠券
func (h *Handler) CreateCoupon(c *gin.Context) {
	var input service.CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	coupon, err := h.couponAdmin.Create(input)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, coupon)
}

// UpdateCoupon 更新优惠券
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var input service.CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	coupon, err := h.couponAdmin.Update(id, input)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.couponAdmin.Delete(id); err != nil {
		respondAdminError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListCouponUsages 优惠券使用记录
func (h *Handler) ListCouponUsages(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	_, page, pageSize := parseListQuery(c)
	usages, total, err := h.couponAdmin.ListUsages(id, page, pageSize)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.SuccessWithPage(c, usages, response.BuildPagination(page, pageSize, total))
}
