package service

import (
	"time"

	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/repository"
)

// PromotionService 自动活动解析服务
type PromotionService struct {
	promotionRepo repository.PromotionRepository
}

// NewPromotionService 创建活动服务
func NewPromotionService(promotionRepo repository.PromotionRepository) *PromotionService {
	return &PromotionService{promotionRepo: promotionRepo}
}

// AppliedPromotion 命中的活动及其优惠金额
type AppliedPromotion struct {
	PromotionID uint
	Name        string
	Discount    models.Money
}

// ResolveForCart 为购物车解析最优自动活动。
// 无命中返回 nil，不视为错误：活动是营销手段而非承诺。
func (s *PromotionService) ResolveForCart(cart pricing.Cart, now time.Time) (*AppliedPromotion, error) {
	promotions, err := s.promotionRepo.ListUsable(now)
	if err != nil {
		return nil, err
	}
	rules := make([]pricing.PromotionRule, 0, len(promotions))
	for _, promotion := range promotions {
		rule, err := promotionRuleFromModel(promotion)
		if err != nil {
			logger.Warnw("promotion_rule_skipped", "promotion_id", promotion.ID, "error", err)
			continue
		}
		rules = append(rules, rule)
	}

	best, amount := pricing.BestPromotion(cart, rules, now)
	if best == nil {
		return nil, nil
	}
	return &AppliedPromotion{
		PromotionID: best.ID,
		Name:        best.Name,
		Discount:    models.NewMoneyFromDecimal(amount),
	}, nil
}
