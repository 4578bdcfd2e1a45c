package admin

import (
	"errors"
	"strconv"

	"github.com/storelane/storelane/internal/http/response"
	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 管理端接口处理器
type Handler struct {
	dealAdmin      *service.DealAdminService
	promotionAdmin *service.PromotionAdminService
	couponAdmin    *service.CouponAdminService
	orderAdmin     *service.OrderAdminService
}

// NewHandler 创建管理端处理器
func NewHandler(
	dealAdmin *service.DealAdminService,
	promotionAdmin *service.PromotionAdminService,
	couponAdmin *service.CouponAdminService,
	orderAdmin *service.OrderAdminService,
) *Handler {
	return &Handler{
		dealAdmin:      dealAdmin,
		promotionAdmin: promotionAdmin,
		couponAdmin:    couponAdmin,
		orderAdmin:     orderAdmin,
	}
}

func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDealNotFound),
		errors.Is(err, service.ErrPromotionNotFound),
		errors.Is(err, pricing.ErrCouponNotFound):
		response.NotFound(c, "rule not found")
	case errors.Is(err, service.ErrInvalidRule):
		response.BadRequest(c, "invalid discount rule")
	case errors.Is(err, service.ErrCouponCodeTaken):
		response.Error(c, response.CodeConflict, "coupon code already exists")
	default:
		logger.Errorw("admin_request_failed", "path", c.FullPath(), "error", err)
		response.Error(c, response.CodeInternal, "operation failed")
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func parseListQuery(c *gin.Context) (*bool, int, int) {
	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		value := raw == "true" || raw == "1"
		isActive = &value
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return isActive, page, pageSize
}
