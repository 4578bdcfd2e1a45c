package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromotionRule 自动活动规则快照
type PromotionRule struct {
	ID                uint
	Name              string
	Kind              Kind
	Value             decimal.Decimal
	Scope             Scope
	Priority          int
	MinOrderAmount    decimal.Decimal
	MaxDiscountAmount decimal.Decimal // 0 表示不限制
	StartsAt          *time.Time
	EndsAt            *time.Time
	IsActive          bool
	CreatedAt         time.Time
}

// Usable 判断规则在 now 时刻是否可用
func (p PromotionRule) Usable(now time.Time) bool {
	return Usable(p.IsActive, p.StartsAt, p.EndsAt, now)
}

// BestPromotion 为购物车挑选最优自动活动并计算优惠金额。
// 过滤条件：now 可用、范围至少命中一行、满足最低订单金额。
// 排序：优先级降序，同优先级取创建时间最近者。活动之间不叠加，只取一条。
func BestPromotion(cart Cart, promotions []PromotionRule, now time.Time) (*PromotionRule, decimal.Decimal) {
	subtotal := cart.ItemsSubtotal()
	var best *PromotionRule
	for i := range promotions {
		p := &promotions[i]
		if !p.Usable(now) || !p.Scope.MatchesCart(cart) {
			continue
		}
		if subtotal.LessThan(p.MinOrderAmount) {
			continue
		}
		if best == nil || p.Priority > best.Priority ||
			(p.Priority == best.Priority && p.CreatedAt.After(best.CreatedAt)) {
			best = p
		}
	}
	if best == nil {
		return nil, decimal.Zero
	}
	picked := *best
	amount := discountAmount(subtotal, picked.Kind, picked.Value, picked.MaxDiscountAmount)
	return &picked, amount
}
