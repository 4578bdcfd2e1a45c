package pricing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CouponRule 优惠券规则快照
type CouponRule struct {
	ID                uint
	Code              string // 统一大写存储
	Name              string
	Kind              Kind
	Value             decimal.Decimal
	Scope             Scope
	MinOrderAmount    decimal.Decimal
	MaxDiscountAmount decimal.Decimal // 0 表示不限制
	UsageLimit        int             // 0 表示不限制
	UsedCount         int
	PerCustomerLimit  int // 0 表示不限制
	StartsAt          *time.Time
	EndsAt            *time.Time
	IsActive          bool
	CreatedAt         time.Time
}

// Usable 判断规则在 now 时刻是否可用
func (c CouponRule) Usable(now time.Time) bool {
	return Usable(c.IsActive, c.StartsAt, c.EndsAt, now)
}

// NormalizeCode 归一化优惠码：去空白并转大写
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CustomerUsageFunc 返回顾客已使用某优惠券的次数（由调用方从订单历史提供）
type CustomerUsageFunc func(couponID uint) int

// ValidateCoupon 校验优惠码并计算优惠金额。
// 按固定顺序短路检查：未找到、停用、未开始、已过期、总次数超限、
// 个人次数超限、未达门槛、范围不匹配；全部通过后返回钳制后的优惠金额。
// 校验不修改任何状态，可在顾客编辑购物车期间反复调用。
func ValidateCoupon(code string, cart Cart, coupons []CouponRule, customerUsage CustomerUsageFunc, now time.Time) (*CouponRule, decimal.Decimal, error) {
	normalized := NormalizeCode(code)
	var found *CouponRule
	for i := range coupons {
		if coupons[i].Code == normalized {
			found = &coupons[i]
			break
		}
	}
	if found == nil {
		return nil, decimal.Zero, ErrCouponNotFound
	}
	c := *found

	if !c.IsActive {
		return nil, decimal.Zero, ErrCouponInactive
	}
	if c.StartsAt != nil && now.Before(*c.StartsAt) {
		return nil, decimal.Zero, ErrCouponNotStarted
	}
	if c.EndsAt != nil && !now.Before(*c.EndsAt) {
		return nil, decimal.Zero, ErrCouponExpired
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return nil, decimal.Zero, ErrCouponUsageLimit
	}
	if c.PerCustomerLimit > 0 && customerUsage != nil && customerUsage(c.ID) >= c.PerCustomerLimit {
		return nil, decimal.Zero, ErrCouponPerCustomerLimit
	}
	subtotal := cart.ItemsSubtotal()
	if subtotal.LessThan(c.MinOrderAmount) {
		return nil, decimal.Zero, ErrCouponBelowMinOrder
	}
	if !c.Scope.MatchesCart(cart) {
		return nil, decimal.Zero, ErrCouponOutOfScope
	}

	amount := discountAmount(subtotal, c.Kind, c.Value, c.MaxDiscountAmount)
	return &c, amount, nil
}
