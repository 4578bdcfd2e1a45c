package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testDeal(id uint, priority int, createdAt time.Time, productIDs ...uint) DealRule {
	starts := createdAt.Add(-time.Hour)
	ends := createdAt.Add(24 * time.Hour)
	return DealRule{
		ID:         id,
		Kind:       KindPercent,
		Value:      decimal.NewFromInt(10),
		ProductIDs: productIDs,
		Priority:   priority,
		StartsAt:   &starts,
		EndsAt:     &ends,
		IsActive:   true,
		CreatedAt:  createdAt,
	}
}

func TestBestDealPriorityWinsRegardlessOfOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	high := testDeal(1, 10, now.Add(-time.Minute), 7)
	low := testDeal(2, 5, now.Add(-time.Minute), 7)

	for _, deals := range [][]DealRule{{high, low}, {low, high}} {
		got := BestDeal(7, deals, now)
		if got == nil || got.ID != high.ID {
			t.Fatalf("应选中优先级 10 的规则, 实际 %+v", got)
		}
	}
}

func TestBestDealTieBreakMostRecent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := testDeal(1, 5, now.Add(-2*time.Hour), 7)
	newer := testDeal(2, 5, now.Add(-time.Minute), 7)

	got := BestDeal(7, []DealRule{older, newer}, now)
	if got == nil || got.ID != newer.ID {
		t.Fatalf("同优先级应选创建时间最近者, 实际 %+v", got)
	}
}

func TestBestDealScopeAndWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	other := testDeal(1, 10, now.Add(-time.Minute), 99)
	expired := testDeal(2, 10, now.Add(-48*time.Hour), 7)

	if got := BestDeal(7, []DealRule{other, expired}, now); got != nil {
		t.Fatalf("不命中或已过期的规则不应被选中, 实际 %+v", got)
	}
}

func TestBestDealIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deals := []DealRule{
		testDeal(1, 10, now.Add(-time.Minute), 7),
		testDeal(2, 5, now.Add(-time.Minute), 7),
	}
	first := BestDeal(7, deals, now)
	second := BestDeal(7, deals, now)
	if first == nil || second == nil || first.ID != second.ID {
		t.Fatalf("相同输入应得到相同结果: %+v vs %+v", first, second)
	}
}
