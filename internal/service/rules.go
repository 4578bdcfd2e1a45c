package service

import (
	"github.com/storelane/storelane/internal/constants"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
)

// 模型到计价引擎快照的转换。引擎只读快照，持久层字段不回写。

func scopeFromModel(scopeType string, categoryIDs, productIDs models.UintList) pricing.Scope {
	switch scopeType {
	case constants.ScopeTypeCategory:
		return pricing.Scope{Type: pricing.ScopeCategories, CategoryIDs: categoryIDs}
	case constants.ScopeTypeProduct:
		return pricing.Scope{Type: pricing.ScopeProducts, ProductIDs: productIDs}
	default:
		return pricing.Scope{Type: pricing.ScopeAll}
	}
}

// validateScope 校验范围类型与引用ID的匹配：按分类/商品限定时引用不能为空
func validateScope(scopeType string, categoryIDs, productIDs []uint) (string, error) {
	switch scopeType {
	case "", constants.ScopeTypeAll:
		return constants.ScopeTypeAll, nil
	case constants.ScopeTypeCategory:
		if len(categoryIDs) == 0 {
			return "", ErrInvalidRule
		}
		return constants.ScopeTypeCategory, nil
	case constants.ScopeTypeProduct:
		if len(productIDs) == 0 {
			return "", ErrInvalidRule
		}
		return constants.ScopeTypeProduct, nil
	default:
		return "", ErrInvalidRule
	}
}

func dealRuleFromModel(m models.Deal) (pricing.DealRule, error) {
	kind, err := pricing.ParseKind(m.Kind)
	if err != nil {
		return pricing.DealRule{}, err
	}
	return pricing.DealRule{
		ID:         m.ID,
		Name:       m.Name,
		Kind:       kind,
		Value:      m.Value.Decimal,
		ProductIDs: m.ProductIDs,
		Priority:   m.Priority,
		StartsAt:   m.StartsAt,
		EndsAt:     m.EndsAt,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}, nil
}

func promotionRuleFromModel(m models.Promotion) (pricing.PromotionRule, error) {
	kind, err := pricing.ParseKind(m.Kind)
	if err != nil {
		return pricing.PromotionRule{}, err
	}
	return pricing.PromotionRule{
		ID:                m.ID,
		Name:              m.Name,
		Kind:              kind,
		Value:             m.Value.Decimal,
		Scope:             scopeFromModel(m.ScopeType, m.CategoryIDs, m.ProductIDs),
		Priority:          m.Priority,
		MinOrderAmount:    m.MinOrderAmount.Decimal,
		MaxDiscountAmount: m.MaxDiscountAmount.Decimal,
		StartsAt:          m.StartsAt,
		EndsAt:            m.EndsAt,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
	}, nil
}

func couponRuleFromModel(m models.Coupon) (pricing.CouponRule, error) {
	kind, err := pricing.ParseKind(m.Kind)
	if err != nil {
		return pricing.CouponRule{}, err
	}
	return pricing.CouponRule{
		ID:                m.ID,
		Code:              m.Code,
		Name:              m.Name,
		Kind:              kind,
		Value:             m.Value.Decimal,
		Scope:             scopeFromModel(m.ScopeType, m.CategoryIDs, m.ProductIDs),
		MinOrderAmount:    m.MinOrderAmount.Decimal,
		MaxDiscountAmount: m.MaxDiscountAmount.Decimal,
		UsageLimit:        m.UsageLimit,
		UsedCount:         m.UsedCount,
		PerCustomerLimit:  m.PerCustomerLimit,
		StartsAt:          m.StartsAt,
		EndsAt:            m.EndsAt,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
	}, nil
}
