package public

import (
	"strconv"

	"github.com/storelane/storelane/internal/http/response"
	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 店面接口处理器
type Handler struct {
	categoryService *service.CategoryService
	productService  *service.ProductService
	cartService     *service.CartService
	couponService   *service.CouponService
	orderService    *service.OrderService
}

// NewHandler 创建店面处理器
func NewHandler(
	categoryService *service.CategoryService,
	productService *service.ProductService,
	cartService *service.CartService,
	couponService *service.CouponService,
	orderService *service.OrderService,
) *Handler {
	return &Handler{
		categoryService: categoryService,
		productService:  productService,
		cartService:     cartService,
		couponService:   couponService,
		orderService:    orderService,
	}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		logger.Errorw("request_failed",
			"path", c.FullPath(),
			"code", code,
			"error", err,
		)
	}
	response.Error(c, code, msg)
}

// customerID 从上下文取出鉴权中间件写入的顾客ID
func customerID(c *gin.Context) uint {
	value, ok := c.Get("customer_id")
	if !ok {
		return 0
	}
	id, _ := value.(uint)
	return id
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func parsePageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
