package pricing

import "errors"

// 优惠券校验失败的业务结果（按 ValidateCoupon 的检查顺序互斥返回）
var (
	ErrCouponNotFound         = errors.New("coupon not found")
	ErrCouponInactive         = errors.New("coupon inactive")
	ErrCouponNotStarted       = errors.New("coupon not started")
	ErrCouponExpired          = errors.New("coupon expired")
	ErrCouponUsageLimit       = errors.New("coupon usage limit exceeded")
	ErrCouponPerCustomerLimit = errors.New("coupon per-customer limit exceeded")
	ErrCouponBelowMinOrder    = errors.New("order amount below coupon minimum")
	ErrCouponOutOfScope       = errors.New("coupon not applicable to cart items")
)
