package pricing

import "github.com/shopspring/decimal"

// Totals 订单金额汇总
type Totals struct {
	ItemsSubtotal     decimal.Decimal
	PromotionDiscount decimal.Decimal
	CouponDiscount    decimal.Decimal
	DiscountAmount    decimal.Decimal
	ShippingAmount    decimal.Decimal
	TaxAmount         decimal.Decimal
	TotalAmount       decimal.Decimal
}

// Aggregate 汇总订单金额。
// 合计优惠 = min(商品小计, 活动优惠 + 优惠券优惠)，保证总优惠不超过小计；
// 各项先保留两位小数再求和，展示明细与总额严格对账。
func Aggregate(cart Cart, promotionDiscount, couponDiscount, shipping, tax decimal.Decimal) Totals {
	subtotal := cart.ItemsSubtotal()
	promotionDiscount = clampNonNegative(promotionDiscount).Round(2)
	couponDiscount = clampNonNegative(couponDiscount).Round(2)
	shipping = clampNonNegative(shipping).Round(2)
	tax = clampNonNegative(tax).Round(2)

	discount := promotionDiscount.Add(couponDiscount)
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	total := subtotal.Sub(discount).Add(shipping).Add(tax).Round(2)
	return Totals{
		ItemsSubtotal:     subtotal,
		PromotionDiscount: promotionDiscount,
		CouponDiscount:    couponDiscount,
		DiscountAmount:    discount,
		ShippingAmount:    shipping,
		TaxAmount:         tax,
		TotalAmount:       total,
	}
}

func clampNonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
