package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/storelane/storelane/internal/config"
	"github.com/storelane/storelane/internal/constants"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/queue"
	"github.com/storelane/storelane/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db            *gorm.DB
	couponRepo    *repository.GormCouponRepository
	usageRepo     *repository.GormCouponUsageRepository
	cartRepo      *repository.GormCartRepository
	orderRepo     *repository.GormOrderRepository
	dealService   *DealService
	cartService   *CartService
	couponService *CouponService
	orderService  *OrderService
}

func setupServiceTest(t *testing.T) *serviceTestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Deal{},
		&models.Promotion{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	couponRepo := repository.NewCouponRepository(db)
	usageRepo := repository.NewCouponUsageRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	dealRepo := repository.NewDealRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)

	dealService := NewDealService(dealRepo)
	cartService := NewCartService(cartRepo, productRepo, dealService)
	promotionService := NewPromotionService(promotionRepo)
	couponService := NewCouponService(couponRepo, usageRepo)
	queueClient, _ := queue.NewClient(nil)
	orderService := NewOrderService(
		db, orderRepo, cartRepo, cartService, promotionService, couponService,
		queueClient, config.OrderConfig{PaymentExpireMinutes: 15}, config.PricingConfig{Currency: "USD"},
	)

	return &serviceTestEnv{
		db:            db,
		couponRepo:    couponRepo,
		usageRepo:     usageRepo,
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		dealService:   dealService,
		cartService:   cartService,
		couponService: couponService,
		orderService:  orderService,
	}
}

func (e *serviceTestEnv) createProduct(t *testing.T, slug string, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  1,
		Slug:        slug,
		Name:        "测试商品 " + slug,
		PriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		IsActive:    true,
	}
	if err := e.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (e *serviceTestEnv) createPromotion(t *testing.T, value, minOrder, maxDiscount string, now time.Time) *models.Promotion {
	t.Helper()
	starts := now.Add(-time.Hour)
	ends := now.Add(time.Hour)
	promotion := &models.Promotion{
		Name:              "全场九折",
		Kind:              constants.DiscountKindPercent,
		Value:             models.NewMoneyFromDecimal(decimal.RequireFromString(value)),
		ScopeType:         constants.ScopeTypeAll,
		Priority:          10,
		MinOrderAmount:    models.NewMoneyFromDecimal(decimal.RequireFromString(minOrder)),
		MaxDiscountAmount: models.NewMoneyFromDecimal(decimal.RequireFromString(maxDiscount)),
		StartsAt:          &starts,
		EndsAt:            &ends,
		IsActive:          true,
	}
	if err := e.db.Create(promotion).Error; err != nil {
		t.Fatalf("create promotion failed: %v", err)
	}
	return promotion
}

func (e *serviceTestEnv) createCoupon(t *testing.T, code string, value string, usageLimit int) *models.Coupon {
	t.Helper()
	coupon := &models.Coupon{
		Code:       pricing.NormalizeCode(code),
		Name:       "测试优惠券",
		Kind:       constants.DiscountKindFixed,
		Value:      models.NewMoneyFromDecimal(decimal.RequireFromString(value)),
		ScopeType:  constants.ScopeTypeAll,
		UsageLimit: usageLimit,
		IsActive:   true,
	}
	if err := e.db.Create(coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return coupon
}

func TestOrderCreateEndToEnd(t *testing.T) {
	env := setupServiceTest(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	product := env.createProduct(t, "widget", "100")
	env.createPromotion(t, "10", "500", "80", now)
	env.createCoupon(t, "FIXED50", "50", 10)

	if err := env.cartService.AddItem(1, product.ID, 10); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	order, err := env.orderService.Create(1, "FIXED50", now)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if order.ItemsSubtotal.StringFixed(2) != "1000.00" {
		t.Fatalf("小计应为 1000.00, 实际 %s", order.ItemsSubtotal.StringFixed(2))
	}
	if order.PromotionDiscountAmount.StringFixed(2) != "80.00" {
		t.Fatalf("活动优惠应钳制为 80.00, 实际 %s", order.PromotionDiscountAmount.StringFixed(2))
	}
	if order.CouponDiscountAmount.StringFixed(2) != "50.00" {
		t.Fatalf("优惠券优惠应为 50.00, 实际 %s", order.CouponDiscountAmount.StringFixed(2))
	}
	if order.DiscountAmount.StringFixed(2) != "130.00" {
		t.Fatalf("总优惠应为 130.00, 实际 %s", order.DiscountAmount.StringFixed(2))
	}
	if order.TotalAmount.StringFixed(2) != "870.00" {
		t.Fatalf("应付金额应为 870.00, 实际 %s", order.TotalAmount.StringFixed(2))
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 10 {
		t.Fatalf("订单项不完整: %+v", order.Items)
	}

	// 兑换已提交：计数 +1 且留有使用记录
	coupon, _ := env.couponRepo.GetByCode("FIXED50")
	if coupon.UsedCount != 1 {
		t.Fatalf("used_count 应为 1, 实际 %d", coupon.UsedCount)
	}
	usageCount, _ := env.usageRepo.CountByCouponAndCustomer(coupon.ID, 1)
	if usageCount != 1 {
		t.Fatalf("应有一条使用记录, 实际 %d", usageCount)
	}

	// 下单后购物车清空
	items, _ := env.cartRepo.ListByCustomer(1)
	if len(items) != 0 {
		t.Fatalf("下单后购物车应清空, 实际 %d 项", len(items))
	}
}

func TestOrderCreateWithDealAdjustedBase(t *testing.T) {
	env := setupServiceTest(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	product := env.createProduct(t, "gadget", "200")
	starts := now.Add(-time.Hour)
	ends := now.Add(time.Hour)
	deal := &models.Deal{
		Name:       "限时半价",
		Kind:       constants.DiscountKindPercent,
		Value:      models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
		ProductIDs: models.UintList{product.ID},
		Priority:   1,
		StartsAt:   &starts,
		EndsAt:     &ends,
		IsActive:   true,
	}
	if err := env.db.Create(deal).Error; err != nil {
		t.Fatalf("create deal failed: %v", err)
	}

	if err := env.cartService.AddItem(2, product.ID, 1); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	order, err := env.orderService.Create(2, "", now)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 购物车级折扣以促销价后的金额为基数
	if order.ItemsSubtotal.StringFixed(2) != "100.00" {
		t.Fatalf("小计应为促销价后 100.00, 实际 %s", order.ItemsSubtotal.StringFixed(2))
	}
	if len(order.Items) != 1 {
		t.Fatalf("订单项不完整: %+v", order.Items)
	}
	item := order.Items[0]
	if item.UnitPriceOriginal.StringFixed(2) != "200.00" || item.UnitPriceAfterDeal.StringFixed(2) != "100.00" {
		t.Fatalf("订单项价格快照错误: %+v", item)
	}
	if item.DealID == nil || *item.DealID != deal.ID {
		t.Fatalf("订单项应记录命中的促销价规则: %+v", item)
	}
}

func TestOrderCreateEmptyCart(t *testing.T) {
	env := setupServiceTest(t)
	_, err := env.orderService.Create(1, "", time.Now())
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("期望 ErrCartEmpty, 实际 %v", err)
	}
}

func TestCommitRedemptionLateRejection(t *testing.T) {
	env := setupServiceTest(t)
	coupon := env.createCoupon(t, "LASTONE", "10", 1)

	// 第一次提交占用最后一个额度
	if err := env.couponService.CommitRedemption(env.db, coupon.ID, 1, 100, coupon.Value); err != nil {
		t.Fatalf("首次兑换应成功: %v", err)
	}
	// 额度耗尽后的提交是迟到拒绝
	err := env.couponService.CommitRedemption(env.db, coupon.ID, 2, 101, coupon.Value)
	if !errors.Is(err, ErrCouponExhausted) {
		t.Fatalf("期望 ErrCouponExhausted, 实际 %v", err)
	}

	got, _ := env.couponRepo.GetByID(coupon.ID)
	if got.UsedCount != 1 {
		t.Fatalf("used_count 不应超过 usage_limit, 实际 %d", got.UsedCount)
	}
}

func TestOrderCreateFailsWhenCouponExhaustedMidway(t *testing.T) {
	env := setupServiceTest(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	product := env.createProduct(t, "thing", "100")
	env.createCoupon(t, "ONEUSE", "10", 1)

	if err := env.cartService.AddItem(1, product.ID, 1); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}
	if err := env.cartService.AddItem(2, product.ID, 1); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	if _, err := env.orderService.Create(1, "ONEUSE", now); err != nil {
		t.Fatalf("首单应成功: %v", err)
	}
	// 额度已被首单消耗，第二单校验阶段即被拒绝
	_, err := env.orderService.Create(2, "ONEUSE", now)
	if !errors.Is(err, pricing.ErrCouponUsageLimit) {
		t.Fatalf("期望 ErrCouponUsageLimit, 实际 %v", err)
	}

	// 第二位顾客的购物车未被清空，订单未落库
	items, _ := env.cartRepo.ListByCustomer(2)
	if len(items) != 1 {
		t.Fatalf("失败的下单不应清空购物车, 实际 %d 项", len(items))
	}
}

func TestOrderCancelReleasesCouponBudget(t *testing.T) {
	env := setupServiceTest(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	product := env.createProduct(t, "box", "100")
	coupon := env.createCoupon(t, "BACK10", "10", 5)

	if err := env.cartService.AddItem(1, product.ID, 1); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}
	order, err := env.orderService.Create(1, "BACK10", now)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := env.orderService.Cancel(order.ID, now.Add(time.Minute)); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	got, _ := env.couponRepo.GetByID(coupon.ID)
	if got.UsedCount != 0 {
		t.Fatalf("取消后额度应归还, used_count 实际 %d", got.UsedCount)
	}
	usageCount, _ := env.usageRepo.CountByCouponAndCustomer(coupon.ID, 1)
	if usageCount != 0 {
		t.Fatalf("取消后使用记录应清理, 实际 %d", usageCount)
	}

	canceled, _ := env.orderRepo.GetByID(order.ID)
	if canceled.Status != constants.OrderStatusCanceled {
		t.Fatalf("订单状态应为已取消, 实际 %s", canceled.Status)
	}

	// 重复取消是状态冲突，不会二次归还
	if err := env.orderService.Cancel(order.ID, now.Add(2*time.Minute)); !errors.Is(err, ErrOrderStateConflict) {
		t.Fatalf("期望 ErrOrderStateConflict, 实际 %v", err)
	}
	got, _ = env.couponRepo.GetByID(coupon.ID)
	if got.UsedCount != 0 {
		t.Fatalf("重复取消不应改变计数, 实际 %d", got.UsedCount)
	}
}

func TestOrderMarkPaidConflictsWithCancel(t *testing.T) {
	env := setupServiceTest(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	product := env.createProduct(t, "book", "30")
	if err := env.cartService.AddItem(1, product.ID, 1); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}
	order, err := env.orderService.Create(1, "", now)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := env.orderService.MarkPaid(order.ID, now.Add(time.Minute)); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	// 已支付订单不能再取消，超时任务也会静默放弃
	if err := env.orderService.Cancel(order.ID, now.Add(2*time.Minute)); !errors.Is(err, ErrOrderStateConflict) {
		t.Fatalf("期望 ErrOrderStateConflict, 实际 %v", err)
	}
	if err := env.orderService.CancelExpired(order.ID, now.Add(2*time.Minute)); err != nil {
		t.Fatalf("超时取消任务应静默返回: %v", err)
	}
}
