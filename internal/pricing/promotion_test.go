package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testCart(lines ...Line) Cart {
	return Cart{CustomerID: 1, Lines: lines}
}

func testLine(productID, categoryID uint, qty int, unitPrice string) Line {
	price := decimal.RequireFromString(unitPrice)
	return Line{
		ProductID:          productID,
		CategoryID:         categoryID,
		Quantity:           qty,
		UnitPriceOriginal:  price,
		UnitPriceAfterDeal: price,
	}
}

func testPromotion(id uint, priority int, createdAt time.Time) PromotionRule {
	starts := createdAt.Add(-time.Hour)
	ends := createdAt.Add(24 * time.Hour)
	return PromotionRule{
		ID:        id,
		Kind:      KindPercent,
		Value:     decimal.NewFromInt(10),
		Scope:     Scope{Type: ScopeAll},
		Priority:  priority,
		StartsAt:  &starts,
		EndsAt:    &ends,
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

func TestBestPromotionPicksHighestPriority(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cart := testCart(testLine(1, 1, 2, "100"))
	high := testPromotion(1, 10, now.Add(-time.Minute))
	low := testPromotion(2, 5, now.Add(-time.Minute))

	promo, amount := BestPromotion(cart, []PromotionRule{low, high}, now)
	if promo == nil || promo.ID != high.ID {
		t.Fatalf("应选中优先级 10 的活动, 实际 %+v", promo)
	}
	if amount.StringFixed(2) != "20.00" {
		t.Fatalf("200 的 10%% 应为 20.00, 实际 %s", amount.StringFixed(2))
	}
}

func TestBestPromotionMinOrderAmount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cart := testCart(testLine(1, 1, 1, "100"))
	promo := testPromotion(1, 10, now.Add(-time.Minute))
	promo.MinOrderAmount = decimal.NewFromInt(500)

	got, _ := BestPromotion(cart, []PromotionRule{promo}, now)
	if got != nil {
		t.Fatalf("未达门槛的活动不应命中, 实际 %+v", got)
	}
}

func TestBestPromotionMaxDiscountCap(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cart := testCart(testLine(1, 1, 10, "100"))
	promo := testPromotion(1, 10, now.Add(-time.Minute))
	promo.MaxDiscountAmount = decimal.NewFromInt(80)

	got, amount := BestPromotion(cart, []PromotionRule{promo}, now)
	if got == nil {
		t.Fatal("活动应命中")
	}
	if amount.StringFixed(2) != "80.00" {
		t.Fatalf("优惠金额应被上限钳制为 80.00, 实际 %s", amount.StringFixed(2))
	}
}

func TestBestPromotionScopeRequiresMatchingLine(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cart := testCart(testLine(1, 1, 1, "100"))
	promo := testPromotion(1, 10, now.Add(-time.Minute))
	promo.Scope = Scope{Type: ScopeCategories, CategoryIDs: []uint{42}}

	if got, _ := BestPromotion(cart, []PromotionRule{promo}, now); got != nil {
		t.Fatalf("范围不命中任何行的活动不应被选中, 实际 %+v", got)
	}

	promo.Scope.CategoryIDs = []uint{1}
	if got, _ := BestPromotion(cart, []PromotionRule{promo}, now); got == nil {
		t.Fatal("范围命中至少一行时活动应被选中")
	}
}
