package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/storelane/storelane/internal/config"
	"github.com/storelane/storelane/internal/constants"
	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/queue"
	"github.com/storelane/storelane/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务：预览、下单、支付、取消
type OrderService struct {
	db               *gorm.DB
	orderRepo        repository.OrderRepository
	cartRepo         repository.CartRepository
	cartService      *CartService
	promotionService *PromotionService
	couponService    *CouponService
	queueClient      *queue.Client
	orderCfg         config.OrderConfig
	pricingCfg       config.PricingConfig
}

// NewOrderService 创建订单服务
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	cartService *CartService,
	promotionService *PromotionService,
	couponService *CouponService,
	queueClient *queue.Client,
	orderCfg config.OrderConfig,
	pricingCfg config.PricingConfig,
) *OrderService {
	return &OrderService{
		db:               db,
		orderRepo:        orderRepo,
		cartRepo:         cartRepo,
		cartService:      cartService,
		promotionService: promotionService,
		couponService:    couponService,
		queueClient:      queueClient,
		orderCfg:         orderCfg,
		pricingCfg:       pricingCfg,
	}
}

// OrderPreview 下单前的金额预览
type OrderPreview struct {
	Lines     []PricedLine      `json:"lines"`
	Promotion *AppliedPromotion `json:"promotion,omitempty"`
	Coupon    *AppliedCoupon    `json:"coupon,omitempty"`
	Totals    OrderTotalsView   `json:"totals"`
}

// OrderTotalsView 金额汇总视图
type OrderTotalsView struct {
	Currency          string       `json:"currency"`
	ItemsSubtotal     models.Money `json:"items_subtotal"`
	PromotionDiscount models.Money `json:"promotion_discount"`
	CouponDiscount    models.Money `json:"coupon_discount"`
	DiscountAmount    models.Money `json:"discount_amount"`
	ShippingAmount    models.Money `json:"shipping_amount"`
	TaxAmount         models.Money `json:"tax_amount"`
	TotalAmount       models.Money `json:"total_amount"`
}

// Preview 计算当前购物车的应付金额，只读不落库。
// 优惠码校验失败时直接返回对应业务错误，让顾客修正后重试。
func (s *OrderService) Preview(customerID uint, couponCode string, now time.Time) (*OrderPreview, error) {
	priced, err := s.cartService.BuildPricedCart(customerID, now)
	if err != nil {
		return nil, err
	}
	if len(priced.Cart.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	promotion, err := s.promotionService.ResolveForCart(priced.Cart, now)
	if err != nil {
		return nil, err
	}

	var coupon *AppliedCoupon
	if strings.TrimSpace(couponCode) != "" {
		coupon, err = s.couponService.Validate(couponCode, priced.Cart, customerID, now)
		if err != nil {
			return nil, err
		}
	}

	totals := s.computeTotals(priced.Cart, promotion, coupon)
	return &OrderPreview{
		Lines:     priced.Lines,
		Promotion: promotion,
		Coupon:    coupon,
		Totals:    totals,
	}, nil
}

// Create 确认下单。整个流程在单个事务中执行：
// 建单、落订单项、提交优惠券兑换、清空购物车。
// 兑换提交失败（额度被并发耗尽）会整体回滚并返回 ErrCouponExhausted。
func (s *OrderService) Create(customerID uint, couponCode string, now time.Time) (*models.Order, error) {
	priced, err := s.cartService.BuildPricedCart(customerID, now)
	if err != nil {
		return nil, err
	}
	if len(priced.Cart.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	promotion, err := s.promotionService.ResolveForCart(priced.Cart, now)
	if err != nil {
		return nil, err
	}

	var coupon *AppliedCoupon
	if strings.TrimSpace(couponCode) != "" {
		coupon, err = s.couponService.Validate(couponCode, priced.Cart, customerID, now)
		if err != nil {
			return nil, err
		}
	}

	totals := s.computeTotals(priced.Cart, promotion, coupon)
	expiresAt := now.Add(time.Duration(s.paymentExpireMinutes()) * time.Minute)

	order := &models.Order{
		OrderNo:        s.generateOrderNo(now),
		CustomerID:     customerID,
		Status:         constants.OrderStatusPendingPayment,
		Currency:       totals.Currency,
		ItemsSubtotal:  totals.ItemsSubtotal,
		DiscountAmount: totals.DiscountAmount,
		ShippingAmount: totals.ShippingAmount,
		TaxAmount:      totals.TaxAmount,
		TotalAmount:    totals.TotalAmount,
		ExpiresAt:      &expiresAt,
	}
	if promotion != nil {
		promotionID := promotion.PromotionID
		order.PromotionID = &promotionID
		order.PromotionDiscountAmount = promotion.Discount
	}
	if coupon != nil {
		couponID := coupon.CouponID
		order.CouponID = &couponID
		order.CouponCode = coupon.Code
		order.CouponDiscountAmount = coupon.Discount
	}
	for _, line := range priced.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:          line.ProductID,
			CategoryID:         line.CategoryID,
			Name:               line.ProductName,
			Quantity:           line.Quantity,
			UnitPriceOriginal:  line.UnitPriceOriginal,
			UnitPriceAfterDeal: line.UnitPriceAfterDeal,
			DealID:             line.DealID,
			TotalPrice: models.NewMoneyFromDecimal(
				line.UnitPriceAfterDeal.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2),
			),
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		if coupon != nil {
			if err := s.couponService.CommitRedemption(tx, coupon.CouponID, customerID, order.ID, coupon.Discount); err != nil {
				return err
			}
		}
		return s.cartRepo.WithTx(tx).ClearByCustomer(customerID)
	})
	if err != nil {
		return nil, err
	}

	s.enqueueOrderTasks(order, now)
	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"customer_id", customerID,
		"total_amount", order.TotalAmount.String(),
	)
	return order, nil
}

// GetByID 获取顾客自己的订单
func (s *OrderService) GetByID(customerID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByCustomer 获取顾客订单列表
func (s *OrderService) ListByCustomer(customerID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByCustomer(customerID, page, pageSize)
}

// MarkPaid 标记订单已支付（状态必须仍为待支付）
func (s *OrderService) MarkPaid(orderID uint, now time.Time) error {
	updated, err := s.orderRepo.UpdateStatus(orderID, constants.OrderStatusPendingPayment, constants.OrderStatusPaid, now)
	if err != nil {
		return err
	}
	if !updated {
		return ErrOrderStateConflict
	}
	return nil
}

// Cancel 取消待支付订单并归还优惠券额度。
// 状态条件更新保证取消与支付不会同时生效，归还最多发生一次。
func (s *OrderService) Cancel(orderID uint, now time.Time) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		updated, err := s.orderRepo.WithTx(tx).UpdateStatus(orderID, constants.OrderStatusPendingPayment, constants.OrderStatusCanceled, now)
		if err != nil {
			return err
		}
		if !updated {
			return ErrOrderStateConflict
		}
		if order.CouponID != nil {
			if err := s.couponService.ReleaseRedemption(tx, *order.CouponID, orderID); err != nil {
				return err
			}
		}
		return nil
	})
}

// CancelExpired 超时取消（由队列 worker 调用）。
// 订单已支付或已取消时静默返回，任务可安全重复投递。
func (s *OrderService) CancelExpired(orderID uint, now time.Time) error {
	err := s.Cancel(orderID, now)
	if errors.Is(err, ErrOrderStateConflict) || errors.Is(err, ErrOrderNotFound) {
		return nil
	}
	return err
}

func (s *OrderService) computeTotals(cart pricing.Cart, promotion *AppliedPromotion, coupon *AppliedCoupon) OrderTotalsView {
	promoAmount := decimal.Zero
	if promotion != nil {
		promoAmount = promotion.Discount.Decimal
	}
	couponAmount := decimal.Zero
	if coupon != nil {
		couponAmount = coupon.Discount.Decimal
	}

	shipping := decimal.NewFromFloat(s.pricingCfg.ShippingFlat)

	// 先不含税汇总一次拿到钳制后的优惠，税基为折后净额
	base := pricing.Aggregate(cart, promoAmount, couponAmount, shipping, decimal.Zero)
	taxRate := decimal.NewFromFloat(s.pricingCfg.TaxRate)
	tax := base.ItemsSubtotal.Sub(base.DiscountAmount).Mul(taxRate).Round(2)

	totals := pricing.Aggregate(cart, promoAmount, couponAmount, shipping, tax)
	currency := strings.TrimSpace(s.pricingCfg.Currency)
	if currency == "" {
		currency = constants.SiteCurrencyDefault
	}
	return OrderTotalsView{
		Currency:          currency,
		ItemsSubtotal:     models.NewMoneyFromDecimal(totals.ItemsSubtotal),
		PromotionDiscount: models.NewMoneyFromDecimal(totals.PromotionDiscount),
		CouponDiscount:    models.NewMoneyFromDecimal(totals.CouponDiscount),
		DiscountAmount:    models.NewMoneyFromDecimal(totals.DiscountAmount),
		ShippingAmount:    models.NewMoneyFromDecimal(totals.ShippingAmount),
		TaxAmount:         models.NewMoneyFromDecimal(totals.TaxAmount),
		TotalAmount:       models.NewMoneyFromDecimal(totals.TotalAmount),
	}
}

func (s *OrderService) paymentExpireMinutes() int {
	if s.orderCfg.PaymentExpireMinutes > 0 {
		return s.orderCfg.PaymentExpireMinutes
	}
	return 15
}

func (s *OrderService) generateOrderNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("SL%s%s", now.Format("20060102150405"), suffix)
}

func (s *OrderService) enqueueOrderTasks(order *models.Order, now time.Time) {
	if s.queueClient == nil {
		return
	}
	if err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("enqueue_confirmation_email_failed", "order_id", order.ID, "error", err)
	}
	if order.ExpiresAt != nil {
		delay := order.ExpiresAt.Sub(now)
		if err := s.queueClient.EnqueueOrderTimeoutCancel(queue.OrderTimeoutCancelPayload{OrderID: order.ID}, delay); err != nil {
			logger.Warnw("enqueue_timeout_cancel_failed", "order_id", order.ID, "error", err)
		}
	}
}
