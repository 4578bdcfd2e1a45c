package public

import (
	"time"

	"github.com/storelane/storelane/internal/http/response"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart 获取购物车（行价已按促销价调整）
func (h *Handler) GetCart(c *gin.Context) {
	priced, err := h.cartService.BuildPricedCart(customerID(c), time.Now())
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{
		"lines":          priced.Lines,
		"items_subtotal": priced.Cart.ItemsSubtotal().StringFixed(2),
	})
}

// AddCartItem 添加商品到购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.cartService.AddItem(customerID(c), req.ProductID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveCartItem 从购物车删除商品
func (h *Handler) RemoveCartItem(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}
	if err := h.cartService.RemoveItem(customerID(c), productID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(customerID(c)); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}
