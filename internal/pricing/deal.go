package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealRule 促销价规则快照（仅按商品ID列表匹配，无分类范围）
type DealRule struct {
	ID         uint
	Name       string
	Kind       Kind
	Value      decimal.Decimal
	ProductIDs []uint
	Priority   int
	StartsAt   *time.Time
	EndsAt     *time.Time
	IsActive   bool
	CreatedAt  time.Time
}

// Usable 判断规则在 now 时刻是否可用
func (d DealRule) Usable(now time.Time) bool {
	return Usable(d.IsActive, d.StartsAt, d.EndsAt, now)
}

// BestDeal 为指定商品挑选最优促销价规则。
// 规则必须在 now 可用且命中商品；按优先级降序排序，同优先级取创建时间最近者。
// 纯函数：相同输入必然产生相同结果，可在任意读路径重复调用。
func BestDeal(productID uint, deals []DealRule, now time.Time) *DealRule {
	var best *DealRule
	for i := range deals {
		d := &deals[i]
		if !d.Usable(now) || !containsID(d.ProductIDs, productID) {
			continue
		}
		if best == nil || d.Priority > best.Priority ||
			(d.Priority == best.Priority && d.CreatedAt.After(best.CreatedAt)) {
			best = d
		}
	}
	if best == nil {
		return nil
	}
	picked := *best
	return &picked
}

// DealPrice 计算促销价规则下的折后单价
func DealPrice(original decimal.Decimal, deal DealRule) decimal.Decimal {
	return ApplyDiscount(original, deal.Kind, deal.Value)
}
