package service

import (
	"time"

	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/repository"

	"github.com/shopspring/decimal"
)

// PromotionAdminService 活动管理服务
type PromotionAdminService struct {
	promotionRepo repository.PromotionRepository
}

// NewPromotionAdminService 创建活动管理服务
func NewPromotionAdminService(promotionRepo repository.PromotionRepository) *PromotionAdminService {
	return &PromotionAdminService{promotionRepo: promotionRepo}
}

// PromotionInput 活动录入参数
type PromotionInput struct {
	Name              string     `json:"name" binding:"required"`
	Kind              string     `json:"kind" binding:"required"`
	Value             string     `json:"value" binding:"required"`
	ScopeType         string     `json:"scope_type"`
	CategoryIDs       []uint     `json:"category_ids"`
	ProductIDs        []uint     `json:"product_ids"`
	Priority          int        `json:"priority"`
	MinOrderAmount    string     `json:"min_order_amount"`
	MaxDiscountAmount string     `json:"max_discount_amount"`
	StartsAt          *time.Time `json:"starts_at" binding:"required"`
	EndsAt            *time.Time `json:"ends_at" binding:"required"`
	IsActive          bool       `json:"is_active"`
}

// Create 创建活动
func (s *PromotionAdminService) Create(input PromotionInput) (*models.Promotion, error) {
	promotion, err := s.buildPromotion(&models.Promotion{}, input)
	if err != nil {
		return nil, err
	}
	if err := s.promotionRepo.Create(promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

// Update 更新活动
func (s *PromotionAdminService) Update(id uint, input PromotionInput) (*models.Promotion, error) {
	existing, err := s.promotionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPromotionNotFound
	}
	promotion, err := s.buildPromotion(existing, input)
	if err != nil {
		return nil, err
	}
	if err := s.promotionRepo.Update(promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

// Delete 删除活动
func (s *PromotionAdminService) Delete(id uint) error {
	existing, err := s.promotionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPromotionNotFound
	}
	return s.promotionRepo.Delete(id)
}

// List 获取活动列表
func (s *PromotionAdminService) List(isActive *bool, page, pageSize int) ([]models.Promotion, int64, error) {
	return s.promotionRepo.List(repository.PromotionListFilter{
		IsActive: isActive,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetByID 获取活动
func (s *PromotionAdminService) GetByID(id uint) (*models.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, ErrPromotionNotFound
	}
	return promotion, nil
}

func (s *PromotionAdminService) buildPromotion(promotion *models.Promotion, input PromotionInput) (*models.Promotion, error) {
	value, err := validateRuleInput(input.Kind, input.Value)
	if err != nil {
		return nil, err
	}
	if input.StartsAt == nil || input.EndsAt == nil || !input.StartsAt.Before(*input.EndsAt) {
		return nil, ErrInvalidRule
	}
	scopeType, err := validateScope(input.ScopeType, input.CategoryIDs, input.ProductIDs)
	if err != nil {
		return nil, err
	}
	minOrder, err := parseOptionalAmount(input.MinOrderAmount)
	if err != nil {
		return nil, err
	}
	maxDiscount, err := parseOptionalAmount(input.MaxDiscountAmount)
	if err != nil {
		return nil, err
	}

	promotion.Name = input.Name
	promotion.Kind = input.Kind
	promotion.Value = models.NewMoneyFromDecimal(value)
	promotion.ScopeType = scopeType
	promotion.CategoryIDs = input.CategoryIDs
	promotion.ProductIDs = input.ProductIDs
	promotion.Priority = input.Priority
	promotion.MinOrderAmount = models.NewMoneyFromDecimal(minOrder)
	promotion.MaxDiscountAmount = models.NewMoneyFromDecimal(maxDiscount)
	promotion.StartsAt = input.StartsAt
	promotion.EndsAt = input.EndsAt
	promotion.IsActive = input.IsActive
	return promotion, nil
}

func parseOptionalAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return decimal.Zero, ErrInvalidRule
	}
	return value, nil
}
