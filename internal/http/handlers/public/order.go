package public

import (
	"time"

	"github.com/storelane/storelane/internal/http/response"

	"github.com/gin-gonic/gin"
)

type validateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type checkoutRequest struct {
	CouponCode string `json:"coupon_code"`
}

// ValidateCoupon 校验优惠码。只读接口，可反复调用，
// 返回钳制后的优惠金额供前端展示。
func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req validateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	now := time.Now()
	priced, err := h.cartService.BuildPricedCart(customerID(c), now)
	if err != nil {
		respondCartError(c, err)
		return
	}
	applied, err := h.couponService.Validate(req.Code, priced.Cart, customerID(c), now)
	if err != nil {
		respondCouponError(c, err)
		return
	}
	response.Success(c, applied)
}

// PreviewOrder 下单预览：活动自动命中，优惠码可选
func (h *Handler) PreviewOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "invalid request body")
		return
	}
	preview, err := h.orderService.Preview(customerID(c), req.CouponCode, time.Now())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, preview)
}

// CreateOrder 确认下单
func (h *Handler) CreateOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.orderService.Create(customerID(c), req.CouponCode, time.Now())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetByID(customerID(c), orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	orders, total, err := h.orderService.ListByCustomer(customerID(c), page, pageSize)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// CancelOrder 取消待支付订单（归还优惠券额度）
func (h *Handler) CancelOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	// 先做归属校验，避免越权取消
	if _, err := h.orderService.GetByID(customerID(c), orderID); err != nil {
		respondOrderError(c, err)
		return
	}
	if err := h.orderService.Cancel(orderID, time.Now()); err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, nil)
}
