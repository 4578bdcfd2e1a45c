package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/storelane/storelane/internal/constants"
	"github.com/storelane/storelane/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCouponRepositoryTest(t *testing.T) (*GormCouponRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:coupon_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("migrate coupon failed: %v", err)
	}
	return NewCouponRepository(db), db
}

func createTestCoupon(t *testing.T, repo *GormCouponRepository, code string, usageLimit, usedCount int) *models.Coupon {
	t.Helper()
	coupon := &models.Coupon{
		Code:       code,
		Name:       "测试优惠券",
		Kind:       constants.DiscountKindFixed,
		Value:      models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		ScopeType:  constants.ScopeTypeAll,
		UsageLimit: usageLimit,
		UsedCount:  usedCount,
		IsActive:   true,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return coupon
}

func TestConsumeUsageStopsAtLimit(t *testing.T) {
	repo, _ := setupCouponRepositoryTest(t)
	coupon := createTestCoupon(t, repo, "LIMIT3", 3, 0)

	for i := 0; i < 3; i++ {
		ok, err := repo.ConsumeUsage(coupon.ID)
		if err != nil {
			t.Fatalf("consume %d failed: %v", i, err)
		}
		if !ok {
			t.Fatalf("第 %d 次消耗应成功", i+1)
		}
	}

	ok, err := repo.ConsumeUsage(coupon.ID)
	if err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	if ok {
		t.Fatal("额度耗尽后消耗应失败")
	}

	got, err := repo.GetByID(coupon.ID)
	if err != nil || got == nil {
		t.Fatalf("get coupon failed: %v", err)
	}
	if got.UsedCount != 3 {
		t.Fatalf("used_count 不应超过 usage_limit, 实际 %d", got.UsedCount)
	}
}

func TestConsumeUsageSingleRemainingUnit(t *testing.T) {
	repo, _ := setupCouponRepositoryTest(t)
	coupon := createTestCoupon(t, repo, "LASTONE", 5, 4)

	successes := 0
	for i := 0; i < 8; i++ {
		ok, err := repo.ConsumeUsage(coupon.ID)
		if err != nil {
			t.Fatalf("consume failed: %v", err)
		}
		if ok {
			successes++
		}
	}
	if successes != 1 {
		t.Fatalf("仅剩 1 个额度时应恰好成功一次, 实际 %d", successes)
	}

	got, _ := repo.GetByID(coupon.ID)
	if got.UsedCount != got.UsageLimit {
		t.Fatalf("used_count(%d) 应等于 usage_limit(%d)", got.UsedCount, got.UsageLimit)
	}
}

func TestConsumeUsageConcurrent(t *testing.T) {
	repo, _ := setupCouponRepositoryTest(t)
	coupon := createTestCoupon(t, repo, "RACE", 5, 0)

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.ConsumeUsage(coupon.ID)
			if err != nil {
				// SQLite 并发写可能繁忙，计数性质仍由条件更新保证
				return
			}
			if ok {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(coupon.ID)
	if err != nil || got == nil {
		t.Fatalf("get coupon failed: %v", err)
	}
	if got.UsedCount > got.UsageLimit {
		t.Fatalf("并发下 used_count(%d) 不应超过 usage_limit(%d)", got.UsedCount, got.UsageLimit)
	}
	if successes > got.UsageLimit {
		t.Fatalf("成功次数(%d) 不应超过 usage_limit(%d)", successes, got.UsageLimit)
	}
	if successes != got.UsedCount {
		t.Fatalf("成功次数(%d) 应等于 used_count(%d)", successes, got.UsedCount)
	}
}

func TestConsumeUsageUnlimited(t *testing.T) {
	repo, _ := setupCouponRepositoryTest(t)
	coupon := createTestCoupon(t, repo, "NOLIMIT", 0, 0)

	for i := 0; i < 10; i++ {
		ok, err := repo.ConsumeUsage(coupon.ID)
		if err != nil || !ok {
			t.Fatalf("不限量优惠券消耗应始终成功: ok=%v err=%v", ok, err)
		}
	}
}

func TestReleaseUsageNeverNegative(t *testing.T) {
	repo, _ := setupCouponRepositoryTest(t)
	coupon := createTestCoupon(t, repo, "RELEASE", 5, 1)

	if err := repo.ReleaseUsage(coupon.ID); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if err := repo.ReleaseUsage(coupon.ID); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	got, _ := repo.GetByID(coupon.ID)
	if got.UsedCount != 0 {
		t.Fatalf("used_count 不应为负, 实际 %d", got.UsedCount)
	}
}
