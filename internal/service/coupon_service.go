package service

import (
	"time"

	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/repository"

	"gorm.io/gorm"
)

// CouponService 优惠券校验与兑换服务
type CouponService struct {
	couponRepo repository.CouponRepository
	usageRepo  repository.CouponUsageRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository, usageRepo repository.CouponUsageRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		usageRepo:  usageRepo,
	}
}

// AppliedCoupon 校验通过的优惠券及其优惠金额
type AppliedCoupon struct {
	CouponID uint
	Code     string
	Name     string
	Discount models.Money
}

// Validate 校验优惠码并计算优惠金额。只读，不消耗额度，
// 失败返回 pricing 包的业务错误（未找到、停用、过期等）。
func (s *CouponService) Validate(code string, cart pricing.Cart, customerID uint, now time.Time) (*AppliedCoupon, error) {
	normalized := pricing.NormalizeCode(code)
	coupon, err := s.couponRepo.GetByCode(normalized)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, pricing.ErrCouponNotFound
	}

	rule, err := couponRuleFromModel(*coupon)
	if err != nil {
		logger.Warnw("coupon_rule_invalid", "coupon_id", coupon.ID, "error", err)
		return nil, pricing.ErrCouponInactive
	}

	var customerUsed int64
	if coupon.PerCustomerLimit > 0 && customerID != 0 {
		customerUsed, err = s.usageRepo.CountByCouponAndCustomer(coupon.ID, customerID)
		if err != nil {
			return nil, err
		}
	}
	usage := func(couponID uint) int { return int(customerUsed) }

	matched, amount, err := pricing.ValidateCoupon(normalized, cart, []pricing.CouponRule{rule}, usage, now)
	if err != nil {
		return nil, err
	}
	return &AppliedCoupon{
		CouponID: matched.ID,
		Code:     matched.Code,
		Name:     matched.Name,
		Discount: models.NewMoneyFromDecimal(amount),
	}, nil
}

// CommitRedemption 在订单确认时原子消耗一次额度并落使用记录。
// 条件更新失败说明额度被并发订单抢完，返回 ErrCouponExhausted，
// 调用方必须放弃该优惠（丢弃折扣或整单失败），不得带着未提交的折扣继续。
func (s *CouponService) CommitRedemption(tx *gorm.DB, couponID, customerID, orderID uint, discount models.Money) error {
	consumed, err := s.couponRepo.WithTx(tx).ConsumeUsage(couponID)
	if err != nil {
		return err
	}
	if !consumed {
		logger.Warnw("coupon_redemption_lost_race", "coupon_id", couponID, "order_id", orderID)
		return ErrCouponExhausted
	}
	return s.usageRepo.WithTx(tx).Create(&models.CouponUsage{
		CouponID:       couponID,
		CustomerID:     customerID,
		OrderID:        orderID,
		DiscountAmount: discount,
	})
}

// ReleaseRedemption 订单取消时归还额度并清理使用记录
func (s *CouponService) ReleaseRedemption(tx *gorm.DB, couponID, orderID uint) error {
	if err := s.couponRepo.WithTx(tx).ReleaseUsage(couponID); err != nil {
		return err
	}
	return s.usageRepo.WithTx(tx).DeleteByOrder(orderID)
}
