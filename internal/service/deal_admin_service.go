package service

import (
	"time"

	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/repository"

	"github.com/shopspring/decimal"
)

// DealAdminService 促销价规则管理服务
type DealAdminService struct {
	dealRepo repository.DealRepository
}

// NewDealAdminService 创建促销价管理服务
func NewDealAdminService(dealRepo repository.DealRepository) *DealAdminService {
	return &DealAdminService{dealRepo: dealRepo}
}

// DealInput 促销价规则录入参数
type DealInput struct {
	Name       string     `json:"name" binding:"required"`
	Kind       string     `json:"kind" binding:"required"`
	Value      string     `json:"value" binding:"required"`
	ProductIDs []uint     `json:"product_ids" binding:"required,min=1"`
	Priority   int        `json:"priority"`
	StartsAt   *time.Time `json:"starts_at" binding:"required"`
	EndsAt     *time.Time `json:"ends_at" binding:"required"`
	IsActive   bool       `json:"is_active"`
}

// Create 创建促销价规则
func (s *DealAdminService) Create(input DealInput) (*models.Deal, error) {
	value, err := validateRuleInput(input.Kind, input.Value)
	if err != nil {
		return nil, err
	}
	if input.StartsAt == nil || input.EndsAt == nil || !input.StartsAt.Before(*input.EndsAt) {
		return nil, ErrInvalidRule
	}
	deal := &models.Deal{
		Name:       input.Name,
		Kind:       input.Kind,
		Value:      models.NewMoneyFromDecimal(value),
		ProductIDs: input.ProductIDs,
		Priority:   input.Priority,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		IsActive:   input.IsActive,
	}
	if err := s.dealRepo.Create(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

// Update 更新促销价规则
func (s *DealAdminService) Update(id uint, input DealInput) (*models.Deal, error) {
	deal, err := s.dealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	value, err := validateRuleInput(input.Kind, input.Value)
	if err != nil {
		return nil, err
	}
	if input.StartsAt == nil || input.EndsAt == nil || !input.StartsAt.Before(*input.EndsAt) {
		return nil, ErrInvalidRule
	}
	deal.Name = input.Name
	deal.Kind = input.Kind
	deal.Value = models.NewMoneyFromDecimal(value)
	deal.ProductIDs = input.ProductIDs
	deal.Priority = input.Priority
	deal.StartsAt = input.StartsAt
	deal.EndsAt = input.EndsAt
	deal.IsActive = input.IsActive
	if err := s.dealRepo.Update(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

// Delete 删除促销价规则
func (s *DealAdminService) Delete(id uint) error {
	deal, err := s.dealRepo.GetByID(id)
	if err != nil {
		return err
	}
	if deal == nil {
		return ErrDealNotFound
	}
	return s.dealRepo.Delete(id)
}

// List 获取促销价规则列表
func (s *DealAdminService) List(isActive *bool, page, pageSize int) ([]models.Deal, int64, error) {
	return s.dealRepo.List(repository.DealListFilter{
		IsActive: isActive,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetByID 获取促销价规则
func (s *DealAdminService) GetByID(id uint) (*models.Deal, error) {
	deal, err := s.dealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	return deal, nil
}

// validateRuleInput 校验折扣类型与数值：类型必须可解析，数值必须为非负数字，
// 百分比不得超过 100。
func validateRuleInput(kind, rawValue string) (decimal.Decimal, error) {
	parsed, err := pricing.ParseKind(kind)
	if err != nil {
		return decimal.Zero, ErrInvalidRule
	}
	value, err := decimal.NewFromString(rawValue)
	if err != nil || value.IsNegative() {
		return decimal.Zero, ErrInvalidRule
	}
	if parsed == pricing.KindPercent && value.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, ErrInvalidRule
	}
	return value, nil
}
