package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/storelane/storelane/internal/http/response"
	"github.com/storelane/storelane/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 订单列表（可按状态、顾客筛选）
func (h *Handler) ListOrders(c *gin.Context) {
	_, page, pageSize := parseListQuery(c)
	status := strings.TrimSpace(c.Query("status"))
	customerID, _ := strconv.ParseUint(c.Query("customer_id"), 10, 64)

	orders, total, err := h.orderAdmin.List(status, uint(customerID), page, pageSize)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetOrder 根据订单编号查询订单
func (h *Handler) GetOrder(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		response.BadRequest(c, "invalid order no")
		return
	}
	order, err := h.orderAdmin.GetByOrderNo(orderNo)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		respondAdminError(c, err)
		return
	}
	response.Success(c, order)
}
