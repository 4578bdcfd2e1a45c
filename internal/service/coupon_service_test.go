package service

import (
	"errors"
	"testing"
	"time"

	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"

	"github.com/shopspring/decimal"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testPricingCart(productID, categoryID uint, qty int, unitPrice string) pricing.Cart {
	return pricing.Cart{
		CustomerID: 1,
		Lines: []pricing.Line{
			{
				ProductID:          productID,
				CategoryID:         categoryID,
				Quantity:           qty,
				UnitPriceOriginal:  mustDecimal(unitPrice),
				UnitPriceAfterDeal: mustDecimal(unitPrice),
			},
		},
	}
}

func TestCouponServiceValidateNotFound(t *testing.T) {
	env := setupServiceTest(t)
	_, err := env.couponService.Validate("NOPE", testPricingCart(1, 1, 1, "100"), 1, time.Now())
	if !errors.Is(err, pricing.ErrCouponNotFound) {
		t.Fatalf("期望 ErrCouponNotFound, 实际 %v", err)
	}
}

func TestCouponServiceValidateSuccess(t *testing.T) {
	env := setupServiceTest(t)
	env.createCoupon(t, "SAVE50", "50", 0)

	applied, err := env.couponService.Validate(" save50 ", testPricingCart(1, 1, 1, "100"), 1, time.Now())
	if err != nil {
		t.Fatalf("校验应通过: %v", err)
	}
	if applied.Code != "SAVE50" {
		t.Fatalf("优惠码应归一化为大写, 实际 %s", applied.Code)
	}
	if applied.Discount.StringFixed(2) != "50.00" {
		t.Fatalf("优惠金额应为 50.00, 实际 %s", applied.Discount.StringFixed(2))
	}
}

func TestCouponServiceValidatePerCustomerLimit(t *testing.T) {
	env := setupServiceTest(t)
	coupon := env.createCoupon(t, "ONCE", "10", 0)
	coupon.PerCustomerLimit = 1
	if err := env.db.Save(coupon).Error; err != nil {
		t.Fatalf("update coupon failed: %v", err)
	}
	if err := env.usageRepo.Create(&models.CouponUsage{
		CouponID:       coupon.ID,
		CustomerID:     1,
		OrderID:        100,
		DiscountAmount: coupon.Value,
	}); err != nil {
		t.Fatalf("create usage failed: %v", err)
	}

	_, err := env.couponService.Validate("ONCE", testPricingCart(1, 1, 1, "100"), 1, time.Now())
	if !errors.Is(err, pricing.ErrCouponPerCustomerLimit) {
		t.Fatalf("期望 ErrCouponPerCustomerLimit, 实际 %v", err)
	}

	// 其他顾客不受影响
	if _, err := env.couponService.Validate("ONCE", testPricingCart(1, 1, 1, "100"), 2, time.Now()); err != nil {
		t.Fatalf("其他顾客应可使用: %v", err)
	}
}

func TestCouponServiceValidateDoesNotMutate(t *testing.T) {
	env := setupServiceTest(t)
	coupon := env.createCoupon(t, "READONLY", "10", 5)

	for i := 0; i < 3; i++ {
		if _, err := env.couponService.Validate("READONLY", testPricingCart(1, 1, 1, "100"), 1, time.Now()); err != nil {
			t.Fatalf("校验应通过: %v", err)
		}
	}
	got, _ := env.couponRepo.GetByID(coupon.ID)
	if got.UsedCount != 0 {
		t.Fatalf("校验不应消耗额度, used_count 实际 %d", got.UsedCount)
	}
}
