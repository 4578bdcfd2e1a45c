package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testCoupon(code string) CouponRule {
	return CouponRule{
		ID:        1,
		Code:      NormalizeCode(code),
		Kind:      KindFixed,
		Value:     decimal.NewFromInt(50),
		Scope:     Scope{Type: ScopeAll},
		IsActive:  true,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateCouponNotFound(t *testing.T) {
	now := time.Now()
	_, _, err := ValidateCoupon("MISSING", testCart(testLine(1, 1, 1, "100")), []CouponRule{testCoupon("SAVE50")}, nil, now)
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("期望 ErrCouponNotFound, 实际 %v", err)
	}
}

func TestValidateCouponCodeNormalized(t *testing.T) {
	now := time.Now()
	cart := testCart(testLine(1, 1, 1, "100"))
	coupon, amount, err := ValidateCoupon("  save50 ", cart, []CouponRule{testCoupon("SAVE50")}, nil, now)
	if err != nil {
		t.Fatalf("归一化后的优惠码应命中: %v", err)
	}
	if coupon.Code != "SAVE50" {
		t.Fatalf("期望 SAVE50, 实际 %s", coupon.Code)
	}
	if amount.StringFixed(2) != "50.00" {
		t.Fatalf("期望 50.00, 实际 %s", amount.StringFixed(2))
	}
}

func TestValidateCouponInactive(t *testing.T) {
	now := time.Now()
	c := testCoupon("SAVE50")
	c.IsActive = false
	_, _, err := ValidateCoupon("SAVE50", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, nil, now)
	if !errors.Is(err, ErrCouponInactive) {
		t.Fatalf("期望 ErrCouponInactive, 实际 %v", err)
	}
}

func TestValidateCouponNotStarted(t *testing.T) {
	now := time.Now()
	c := testCoupon("SAVE50")
	starts := now.Add(time.Hour)
	c.StartsAt = &starts
	_, _, err := ValidateCoupon("SAVE50", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, nil, now)
	if !errors.Is(err, ErrCouponNotStarted) {
		t.Fatalf("期望 ErrCouponNotStarted, 实际 %v", err)
	}
}

func TestValidateCouponExpired(t *testing.T) {
	now := time.Now()
	c := testCoupon("SAVE50")
	ends := now.Add(-time.Hour)
	c.EndsAt = &ends
	_, _, err := ValidateCoupon("SAVE50", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, nil, now)
	if !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("期望 ErrCouponExpired, 实际 %v", err)
	}
}

func TestValidateCouponExpiresAtBoundary(t *testing.T) {
	now := time.Now()
	c := testCoupon("SAVE50")
	c.EndsAt = &now
	_, _, err := ValidateCoupon("SAVE50", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, nil, now)
	if !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("EndsAt == now 应视为已过期, 实际 %v", err)
	}
}

func TestValidateCouponUsageLimitExceeded(t *testing.T) {
	now := time.Now()
	c := testCoupon("SAVE50")
	c.UsageLimit = 5
	c.UsedCount = 5
	_, _, err := ValidateCoupon("SAVE50", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, nil, now)
	if !errors.Is(err, ErrCouponUsageLimit) {
		t.Fatalf("期望 ErrCouponUsageLimit, 实际 %v", err)
	}
}

func TestValidateCouponPerCustomerLimit(t *testing.T) {
	now := time.Now()
	c := testCoupon("SAVE50")
	c.PerCustomerLimit = 1
	usage := func(couponID uint) int { return 1 }
	_, _, err := ValidateCoupon("SAVE50", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, usage, now)
	if !errors.Is(err, ErrCouponPerCustomerLimit) {
		t.Fatalf("期望 ErrCouponPerCustomerLimit, 实际 %v", err)
	}
}

func TestValidateCouponBelowMinOrder(t *testing.T) {
	now := time.Now()
	c := testCoupon("SAVE50")
	c.MinOrderAmount = decimal.NewFromInt(500)
	_, _, err := ValidateCoupon("SAVE50", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, nil, now)
	if !errors.Is(err, ErrCouponBelowMinOrder) {
		t.Fatalf("期望 ErrCouponBelowMinOrder, 实际 %v", err)
	}
}

func TestValidateCouponOutOfScope(t *testing.T) {
	now := time.Now()
	c := testCoupon("SAVE50")
	c.Scope = Scope{Type: ScopeProducts, ProductIDs: []uint{99}}
	_, _, err := ValidateCoupon("SAVE50", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, nil, now)
	if !errors.Is(err, ErrCouponOutOfScope) {
		t.Fatalf("期望 ErrCouponOutOfScope, 实际 %v", err)
	}
}

func TestValidateCouponDiscountCapped(t *testing.T) {
	now := time.Now()
	c := testCoupon("HALF")
	c.Kind = KindPercent
	c.Value = decimal.NewFromInt(50)
	c.MaxDiscountAmount = decimal.NewFromInt(30)
	_, amount, err := ValidateCoupon("HALF", testCart(testLine(1, 1, 1, "100")), []CouponRule{c}, nil, now)
	if err != nil {
		t.Fatalf("校验应通过: %v", err)
	}
	if amount.StringFixed(2) != "30.00" {
		t.Fatalf("优惠金额应被上限钳制为 30.00, 实际 %s", amount.StringFixed(2))
	}
}
