package pricing

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
)

// ApplyDiscount 对原价应用一次折扣，返回折后价。
// 百分比折扣先钳制到 [0, 100]；结果不小于 0，保留两位小数（四舍五入，远离零）。
// 系统内所有折扣计算都经过此函数，保证取整与钳制行为一致。
func ApplyDiscount(original decimal.Decimal, kind Kind, value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		value = decimal.Zero
	}
	var price decimal.Decimal
	switch kind {
	case KindPercent:
		if value.GreaterThan(hundred) {
			value = hundred
		}
		price = original.Mul(hundred.Sub(value)).Div(hundred)
	default:
		price = original.Sub(value)
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	return price.Round(2)
}

// discountAmount 计算折扣金额并按上限钳制（limit <= 0 表示不限制）
func discountAmount(base decimal.Decimal, kind Kind, value, limit decimal.Decimal) decimal.Decimal {
	amount := base.Sub(ApplyDiscount(base, kind, value))
	if limit.IsPositive() && amount.GreaterThan(limit) {
		amount = limit
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return amount.Round(2)
}
