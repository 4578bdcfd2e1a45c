package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAggregateClampsDiscountToSubtotal(t *testing.T) {
	cart := testCart(testLine(1, 1, 1, "100"))
	totals := Aggregate(cart, decimal.NewFromInt(80), decimal.NewFromInt(50), decimal.Zero, decimal.Zero)
	if totals.DiscountAmount.StringFixed(2) != "100.00" {
		t.Fatalf("合计优惠应钳制到小计 100.00, 实际 %s", totals.DiscountAmount.StringFixed(2))
	}
	if totals.TotalAmount.StringFixed(2) != "0.00" {
		t.Fatalf("总额不应为负, 实际 %s", totals.TotalAmount.StringFixed(2))
	}
}

func TestAggregateInvariants(t *testing.T) {
	cart := testCart(testLine(1, 1, 3, "19.99"), testLine(2, 2, 1, "5.50"))
	totals := Aggregate(cart, decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.NewFromInt(8), decimal.RequireFromString("2.37"))

	if totals.DiscountAmount.GreaterThan(totals.ItemsSubtotal) {
		t.Fatalf("优惠 %s 不应超过小计 %s", totals.DiscountAmount, totals.ItemsSubtotal)
	}
	if totals.TotalAmount.IsNegative() {
		t.Fatalf("总额不应为负: %s", totals.TotalAmount)
	}
	want := totals.ItemsSubtotal.Sub(totals.DiscountAmount).Add(totals.ShippingAmount).Add(totals.TaxAmount)
	if !totals.TotalAmount.Equal(want) {
		t.Fatalf("明细与总额不对账: %s != %s", totals.TotalAmount, want)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	cart := testCart(testLine(1, 1, 2, "49.95"))
	first := Aggregate(cart, decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.NewFromInt(6), decimal.NewFromInt(3))
	second := Aggregate(cart, decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.NewFromInt(6), decimal.NewFromInt(3))
	if first.TotalAmount.StringFixed(2) != second.TotalAmount.StringFixed(2) ||
		first.DiscountAmount.StringFixed(2) != second.DiscountAmount.StringFixed(2) {
		t.Fatalf("相同输入应得到相同汇总: %+v vs %+v", first, second)
	}
}

// 端到端：小计 1000，活动「9 折、门槛 500、上限 80」与优惠码「立减 50」同时生效，
// 活动优惠 min(100, 80) = 80，优惠码优惠 50，总优惠 130，应付 870。
func TestAggregateEndToEnd(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cart := testCart(testLine(1, 1, 10, "100"))

	promo := testPromotion(1, 10, now.Add(-time.Minute))
	promo.MinOrderAmount = decimal.NewFromInt(500)
	promo.MaxDiscountAmount = decimal.NewFromInt(80)
	bestPromo, promoAmount := BestPromotion(cart, []PromotionRule{promo}, now)
	if bestPromo == nil {
		t.Fatal("活动应命中")
	}
	if promoAmount.StringFixed(2) != "80.00" {
		t.Fatalf("活动优惠应为 80.00, 实际 %s", promoAmount.StringFixed(2))
	}

	coupon := testCoupon("FIXED50")
	_, couponAmount, err := ValidateCoupon("FIXED50", cart, []CouponRule{coupon}, nil, now)
	if err != nil {
		t.Fatalf("优惠码校验应通过: %v", err)
	}
	if couponAmount.StringFixed(2) != "50.00" {
		t.Fatalf("优惠码优惠应为 50.00, 实际 %s", couponAmount.StringFixed(2))
	}

	totals := Aggregate(cart, promoAmount, couponAmount, decimal.Zero, decimal.Zero)
	if totals.DiscountAmount.StringFixed(2) != "130.00" {
		t.Fatalf("总优惠应为 130.00, 实际 %s", totals.DiscountAmount.StringFixed(2))
	}
	if totals.TotalAmount.StringFixed(2) != "870.00" {
		t.Fatalf("应付金额应为 870.00, 实际 %s", totals.TotalAmount.StringFixed(2))
	}
}
