package service

import "errors"

// 业务预期内的失败结果，由 HTTP 层映射为对应的响应码
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductInactive    = errors.New("product inactive")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderStateConflict = errors.New("order state conflict")
	ErrDealNotFound       = errors.New("deal not found")
	ErrPromotionNotFound  = errors.New("promotion not found")
	ErrCouponCodeTaken    = errors.New("coupon code already exists")
	ErrInvalidRule        = errors.New("invalid discount rule")

	// ErrCouponExhausted 兑换提交时额度已被并发订单耗尽（迟到拒绝，不重试）
	ErrCouponExhausted = errors.New("coupon usage budget exhausted")
)
