package service

import (
	"time"

	"github.com/storelane/storelane/internal/logger"
	"github.com/storelane/storelane/internal/models"
	"github.com/storelane/storelane/internal/pricing"
	"github.com/storelane/storelane/internal/repository"
)

// DealService 促销价解析服务
type DealService struct {
	dealRepo repository.DealRepository
}

// NewDealService 创建促销价服务
func NewDealService(dealRepo repository.DealRepository) *DealService {
	return &DealService{dealRepo: dealRepo}
}

// UsableRules 获取 now 时刻可用的促销价规则快照。
// 折扣类型非法的规则跳过并告警，不影响其他规则生效。
func (s *DealService) UsableRules(now time.Time) ([]pricing.DealRule, error) {
	deals, err := s.dealRepo.ListUsable(now)
	if err != nil {
		return nil, err
	}
	rules := make([]pricing.DealRule, 0, len(deals))
	for _, deal := range deals {
		rule, err := dealRuleFromModel(deal)
		if err != nil {
			logger.Warnw("deal_rule_skipped", "deal_id", deal.ID, "error", err)
			continue
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ResolvedPrice 商品的促销价解析结果
type ResolvedPrice struct {
	UnitPriceOriginal  models.Money
	UnitPriceAfterDeal models.Money
	DealID             *uint
	DealName           string
}

// ResolvePrice 解析单个商品的展示价（最多命中一条促销价规则）
func (s *DealService) ResolvePrice(product *models.Product, now time.Time) (ResolvedPrice, error) {
	rules, err := s.UsableRules(now)
	if err != nil {
		return ResolvedPrice{}, err
	}
	return resolvePriceWithRules(product, rules, now), nil
}

// ResolvePrices 批量解析商品展示价（共用一次规则查询）
func (s *DealService) ResolvePrices(products []models.Product, now time.Time) (map[uint]ResolvedPrice, error) {
	rules, err := s.UsableRules(now)
	if err != nil {
		return nil, err
	}
	resolved := make(map[uint]ResolvedPrice, len(products))
	for i := range products {
		resolved[products[i].ID] = resolvePriceWithRules(&products[i], rules, now)
	}
	return resolved, nil
}

func resolvePriceWithRules(product *models.Product, rules []pricing.DealRule, now time.Time) ResolvedPrice {
	result := ResolvedPrice{
		UnitPriceOriginal:  product.PriceAmount,
		UnitPriceAfterDeal: product.PriceAmount,
	}
	best := pricing.BestDeal(product.ID, rules, now)
	if best == nil {
		return result
	}
	result.UnitPriceAfterDeal = models.NewMoneyFromDecimal(pricing.DealPrice(product.PriceAmount.Decimal, *best))
	dealID := best.ID
	result.DealID = &dealID
	result.DealName = best.Name
	return result
}
