package service

import (
	"time"

	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/repository"
)

// CouponAdminService 优惠券管理服务
type CouponAdminService struct {
	couponRepo repository.CouponRepository
	usageRepo  repository.CouponUsageRepository
}

// NewCouponAdminService 创建优惠券管理服务
func NewCouponAdminService(couponRepo repository.CouponRepository, usageRepo repository.CouponUsageRepository) *CouponAdminService {
	return &CouponAdminService{
		couponRepo: couponRepo,
		usageRepo:  usageRepo,
	}
}

// CouponInput 优惠券录入参数
type CouponInput struct {
	Code              string     `json:"code" binding:"required"`
	Name              string     `json:"name" binding:"required"`
	Kind              string     `json:"kind" binding:"required"`
	Value             string     `json:"value" binding:"required"`
	ScopeType         string     `json:"scope_type"`
	CategoryIDs       []uint     `json:"category_ids"`
	ProductIDs        []uint     `json:"product_ids"`
	MinOrderAmount    string     `json:"min_order_amount"`
	MaxDiscountAmount string     `json:"max_discount_amount"`
	UsageLimit        int        `json:"usage_limit"`
	PerCustomerLimit  int        `json:"per_customer_limit"`
	StartsAt          *time.Time `json:"starts_at"`
	EndsAt            *time.Time `json:"ends_at"`
	IsActive          bool       `json:"is_active"`
}

// Create 创建优惠券。优惠码归一化为大写后存储，重复报错。
// used_count 始终从 0 起，仅由兑换提交与归还修改。
func (s *CouponAdminService) Create(input CouponInput) (*models.Coupon, error) {
	coupon, err := s.buildCoupon(&models.Coupon{}, input)
	if err != nil {
		return nil, err
	}
	existing, err := s.couponRepo.GetByCode(coupon.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCouponCodeTaken
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券（不触碰 used_count）
func (s *CouponAdminService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, pricing.ErrCouponNotFound
	}
	normalized := pricing.NormalizeCode(input.Code)
	if normalized != coupon.Code {
		existing, err := s.couponRepo.GetByCode(normalized)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrCouponCodeTaken
		}
	}
	coupon, err = s.buildCoupon(coupon, input)
	if err != nil {
		return nil, err
	}
	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete 删除优惠券
func (s *CouponAdminService) Delete(id uint) error {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return pricing.ErrCouponNotFound
	}
	return s.couponRepo.Delete(id)
}

// List 获取优惠券列表
func (s *CouponAdminService) List(code string, isActive *bool, page, pageSize int) ([]models.Coupon, int64, error) {
	filter := repository.CouponListFilter{
		IsActive: isActive,
		Page:     page,
		PageSize: pageSize,
	}
	if code != "" {
		filter.Code = pricing.NormalizeCode(code)
	}
	return s.couponRepo.List(filter)
}

// GetByID 获取优惠券
func (s *CouponAdminService) GetByID(id uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, pricing.ErrCouponNotFound
	}
	return coupon, nil
}

// ListUsages 获取优惠券使用记录
func (s *CouponAdminService) ListUsages(couponID uint, page, pageSize int) ([]models.CouponUsage, int64, error) {
	return s.usageRepo.ListByCoupon(couponID, page, pageSize)
}

func (s *CouponAdminService) buildCoupon(coupon *models.Coupon, input CouponInput) (*models.Coupon, error) {
	normalized := pricing.NormalizeCode(input.Code)
	if normalized == "" {
		return nil, ErrInvalidRule
	}
	value, err := validateRuleInput(input.Kind, input.Value)
	if err != nil {
		return nil, err
	}
	scopeType, err := validateScope(input.ScopeType, input.CategoryIDs, input.ProductIDs)
	if err != nil {
		return nil, err
	}
	if input.StartsAt != nil && input.EndsAt != nil && !input.StartsAt.Before(*input.EndsAt) {
		return nil, ErrInvalidRule
	}
	if input.UsageLimit < 0 || input.PerCustomerLimit < 0 {
		return nil, ErrInvalidRule
	}
	minOrder, err := parseOptionalAmount(input.MinOrderAmount)
	if err != nil {
		return nil, err
	}
	maxDiscount, err := parseOptionalAmount(input.MaxDiscountAmount)
	if err != nil {
		return nil, err
	}

	coupon.Code = normalized
	coupon.Name = input.Name
	coupon.Kind = input.Kind
	coupon.Value = models.NewMoneyFromDecimal(value)
	coupon.ScopeType = scopeType
	coupon.CategoryIDs = input.CategoryIDs
	coupon.ProductIDs = input.ProductIDs
	coupon.MinOrderAmount = models.NewMoneyFromDecimal(minOrder)
	coupon.MaxDiscountAmount = models.NewMoneyFromDecimal(maxDiscount)
	coupon.UsageLimit = input.UsageLimit
	coupon.PerCustomerLimit = input.PerCustomerLimit
	coupon.StartsAt = input.StartsAt
	coupon.EndsAt = input.EndsAt
	coupon.IsActive = input.IsActive
	return coupon, nil
}
